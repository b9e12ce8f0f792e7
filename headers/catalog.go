package headers

import "strings"

var defaultCatalog = []Suggestion{
	{Label: "Accept", Value: "Accept"},
	{Label: "Accept-Encoding", Value: "Accept-Encoding"},
	{Label: "Accept-Language", Value: "Accept-Language"},
	{Label: "Access-Control-Allow-Headers", Value: "Access-Control-Allow-Headers"},
	{Label: "Access-Control-Allow-Methods", Value: "Access-Control-Allow-Methods"},
	{Label: "Access-Control-Allow-Origin", Value: "Access-Control-Allow-Origin"},
	{Label: "Access-Control-Expose-Headers", Value: "Access-Control-Expose-Headers"},
	{Label: "Authorization", Value: "Authorization"},
	{Label: "Cache-Control", Value: "Cache-Control"},
	{Label: "Connection", Value: "Connection"},
	{Label: "Content-Encoding", Value: "Content-Encoding"},
	{Label: "Content-Length", Value: "Content-Length"},
	{Label: "Content-Type", Value: "Content-Type"},
	{Label: "Cookie", Value: "Cookie"},
	{Label: "Date", Value: "Date"},
	{Label: "Expect", Value: "Expect"},
	{Label: "Forwarded", Value: "Forwarded"},
	{Label: "From", Value: "From"},
	{Label: "Host", Value: "Host"},
	{Label: "If-Match", Value: "If-Match"},
	{Label: "If-Modified-Since", Value: "If-Modified-Since"},
	{Label: "If-None-Match", Value: "If-None-Match"},
	{Label: "If-Range", Value: "If-Range"},
	{Label: "If-Unmodified-Since", Value: "If-Unmodified-Since"},
	{Label: "Max-Forwards", Value: "Max-Forwards"},
	{Label: "Origin-Trial", Value: "Origin-Trial"},
	{Label: "Pragma", Value: "Pragma"},
	{Label: "Proxy-Authorization", Value: "Proxy-Authorization"},
	{Label: "Range", Value: "Range"},
	{Label: "Referer", Value: "Referer"},
	{Label: "Referrer-Policy", Value: "Referrer-Policy"},
	{Label: "Sforce-Auto-Assign", Value: "Sforce-Auto-Assign"},
	{Label: "Sforce-Call-Options", Value: "Sforce-Call-Options"},
	{Label: "Sforce-Duplicate-Rule-Header", Value: "Sforce-Duplicate-Rule-Header"},
	{Label: "Sforce-Limit-Info", Value: "Sforce-Limit-Info"},
	{Label: "Sforce-Query-Options", Value: "Sforce-Query-Options"},
	{Label: "Sforce-Search-Options", Value: "Sforce-Search-Options"},
	{Label: "Sforce-Session-Id", Value: "Sforce-Session-Id"},
	{Label: "Sforce-Trigger-Disable", Value: "Sforce-Trigger-Disable"},
	{Label: "Sforce-Trigger-Enable", Value: "Sforce-Trigger-Enable"},
	{Label: "Sforce-Trigger-Old", Value: "Sforce-Trigger-Old"},
	{Label: "Sforce-Trigger-Size", Value: "Sforce-Trigger-Size"},
	{Label: "Sforce-Trigger-User", Value: "Sforce-Trigger-User"},
	{Label: "Strict-Transport-Security", Value: "Strict-Transport-Security"},
	{Label: "TE", Value: "TE"},
	{Label: "Transfer-Encoding", Value: "Transfer-Encoding"},
	{Label: "Upgrade", Value: "Upgrade"},
	{Label: "User-Agent", Value: "User-Agent"},
	{Label: "Vary", Value: "Vary"},
	{Label: "Via", Value: "Via"},
	{Label: "Warning", Value: "Warning"},
	{Label: "X-Content-Type-Options", Value: "X-Content-Type-Options"},
	{Label: "X-Powered-By", Value: "X-Powered-By"},
	{Label: "X-Request-Id", Value: "X-Request-Id"},
	{Label: "X-Robots-Tag", Value: "X-Robots-Tag"},
	{Label: "X-Sfdc-Edge-Cache", Value: "X-Sfdc-Edge-Cache"},
	{Label: "X-Sfdc-Request-Id", Value: "X-Sfdc-Request-Id"},
}

// DefaultCatalog returns a copy of the built-in header name suggestions.
func DefaultCatalog() []Suggestion {
	return cloneSuggestions(defaultCatalog)
}

// FilterSuggestions returns the catalog entries whose label contains query,
// ignoring case. Catalog order is preserved. An empty query matches every
// entry.
func FilterSuggestions(catalog []Suggestion, query string) []Suggestion {
	q := strings.ToLower(query)
	out := make([]Suggestion, 0, len(catalog))
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Label), q) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
