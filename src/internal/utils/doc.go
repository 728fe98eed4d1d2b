// Package utils provides general-purpose helpers for keen-console.
//
// # Components
//
//   - Path utilities: resolve paths relative to the config file directory
//   - File utilities: safe closing and atomic writes
//   - Port validation
//
// # Example Usage
//
//	absPath := utils.GetAbsolutePath("keen-console.db", "/opt/etc/keen-console")
//	// Returns: /opt/etc/keen-console/keen-console.db
package utils
