package source

// Config selects where extension definitions are read from.
type Config struct {
	// Kind is either "local" or "bucket".
	Kind string `mapstructure:"kind" default:"local"`
	// Dir is the local directory scanned when Kind is "local".
	Dir string `mapstructure:"dir" default:"./extensions"`
	// Prefix is the object prefix listed when Kind is "bucket".
	Prefix string `mapstructure:"prefix" default:"extensions/"`
}

const (
	KindLocal  = "local"
	KindBucket = "bucket"
)
