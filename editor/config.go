package editor

import "github.com/iw2rmb/headeredit/headers"

const (
	defaultKeyWidth          = 28
	defaultValueWidth        = 32
	defaultMaxSuggestionRows = 6
	defaultSuggestionWidth   = 40
)

// Config configures the editor Model.
type Config struct {
	// Initial rows. The list appends its template row.
	Headers []headers.Row

	// Forwarded to headers.Options.
	Catalog      []headers.Suggestion
	HistoryLimit int
	OnChange     func(headers.ChangeEvent)

	Style  Style
	KeyMap KeyMap

	// KeyWidth is the key column width in terminal cells.
	KeyWidth int
	// MaxSuggestionRows caps the popup height.
	MaxSuggestionRows int

	KeyPlaceholder   string
	ValuePlaceholder string
}

func normalizeConfig(cfg Config) Config {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	if cfg.KeyWidth <= 0 {
		cfg.KeyWidth = defaultKeyWidth
	}
	if cfg.MaxSuggestionRows <= 0 {
		cfg.MaxSuggestionRows = defaultMaxSuggestionRows
	}
	if cfg.KeyPlaceholder == "" {
		cfg.KeyPlaceholder = "key"
	}
	if cfg.ValuePlaceholder == "" {
		cfg.ValuePlaceholder = "value"
	}
	return cfg
}
