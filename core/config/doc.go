// Package config provides configuration management for chain-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Sync: tree layout (base, overlay, output roots), upstream submodule
//   - Log: logging level and format
//
// # Precedence
//
// Defaults < environment variables < command-line flag overrides. Flag
// overrides are applied with MergeOverrides, which layers a sparsely
// populated Config over the loaded one.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.BaseRoot)
package config
