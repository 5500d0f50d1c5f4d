package reconcile

// Config holds defaults for reconciliation passes.
type Config struct {
	// Override enables reloading of entities whose staged version is newer.
	Override bool `mapstructure:"override" default:"false"`
	// DryRun reports decisions without writing to the database.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// Options converts the configuration into pass options.
func (c Config) Options() Options {
	return Options{Override: c.Override, DryRun: c.DryRun}
}
