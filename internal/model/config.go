package model

import "runtime"

// Config holds the complete koref configuration
type Config struct {
	Policy      PolicyConfig      `yaml:"policy" json:"policy"`
	Input       InputConfig       `yaml:"input" json:"input"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// PolicyConfig controls which mentions survive resolution
type PolicyConfig struct {
	UseAppos         bool `yaml:"use_appos" json:"use_appos"`                 // Fuse appositive phrases into the head span
	UseExappos       bool `yaml:"use_exappos" json:"use_exappos"`             // Retain extended-appositive target mentions
	UseAliases       bool `yaml:"use_aliases" json:"use_aliases"`             // Retain alias target mentions
	RemoveSingletons bool `yaml:"remove_singletons" json:"remove_singletons"` // Drop mentions belonging to no cluster
}

// InputConfig describes the tabular annotation dump layout
type InputConfig struct {
	TextPrefix  string `yaml:"text_prefix" json:"text_prefix"`   // Literal prefix before the paragraph text line
	TokenColumn int    `yaml:"token_column" json:"token_column"` // 0-based column of the token surface text
	LabelColumn int    `yaml:"label_column" json:"label_column"` // 0-based column of the pipe-separated label list
}

// ConcurrencyConfig controls parallel paragraph processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls reporting behavior
type OutputConfig struct {
	Verbose           bool    `yaml:"verbose" json:"verbose"`
	ProgressPerSecond float64 `yaml:"progress_per_second" json:"progress_per_second"` // Max stderr progress updates per second
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Policy: PolicyConfig{
			UseAppos:         false,
			UseExappos:       false,
			UseAliases:       false,
			RemoveSingletons: false,
		},
		Input: InputConfig{
			TextPrefix:  "#Text=",
			TokenColumn: 2,
			LabelColumn: 3,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Verbose:           false,
			ProgressPerSecond: 4,
		},
	}
}
