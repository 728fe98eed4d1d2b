// Package config handles configuration file parsing and validation for keen-console.
//
// The configuration is a TOML file with three sections:
//   - general: API listen address, web UI directory and session lifetime
//   - store: where app configurations are loaded from and saved to
//   - server: the DNS/DHCP server URL, token and operation path template
//
// Every field is optional; getters return defaults for missing values.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/opt/etc/keen-console/keen-console.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Println(cfg.GetAPIBindAddress())
package config
