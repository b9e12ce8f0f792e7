// Package editor provides a Bubble Tea component that edits a header list
// backed by the headers package.
//
// The component is the rendering layer only: every content change goes
// through a headers.List operation, and hosts observe the list through
// Config.OnChange.
package editor
