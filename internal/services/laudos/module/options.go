package module

import "copsoq/internal/platform/config"

// Options holds configuration settings for the laudos module
type Options struct {
	// Snapshots publishes domain scores to clickhouse when a store is configured
	Snapshots bool
}

// FromConfig reads CORE_LAUDOS_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_LAUDOS_")
	return Options{
		Snapshots: c.MayBool("SNAPSHOTS", true),
	}
}
