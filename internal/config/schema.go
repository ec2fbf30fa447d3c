package config

// MappingsConfig is the complete query-classification rule table. The
// table is fixed at load time and never mutated at runtime.
type MappingsConfig struct {
	Rules    []MappingRule  `yaml:"mappings"`
	Fallback FallbackConfig `yaml:"fallback"`
}

// MappingRule maps keyword phrases to one domain category. Optional bank,
// card-type and feature lists become filter hints on a match.
type MappingRule struct {
	Category  string   `yaml:"category"`
	Priority  int      `yaml:"priority"`
	Keywords  []string `yaml:"keywords"`
	BankNames []string `yaml:"bank_names,omitempty"`
	CardTypes []string `yaml:"card_types,omitempty"`
	Features  []string `yaml:"features,omitempty"`
}

// FallbackConfig is the result returned when no rule matches at all.
// A Confidence of 0 means unset and is replaced with the default 0.1 at
// load time; the fallback always carries a small positive confidence.
type FallbackConfig struct {
	Category   string  `yaml:"category"`
	Confidence float64 `yaml:"confidence"`
}
