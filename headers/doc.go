// Package headers implements the pure, UI-independent header list model for
// headeredit.
//
// Rows are addressed by 0-based position; a position is not an identity and
// shifts when rows are deleted. The list always ends in exactly one empty
// template row.
package headers
