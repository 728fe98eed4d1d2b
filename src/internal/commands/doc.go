// Package commands implements the subcommands of keen-console.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments and load configuration where needed
//   - Run(): execute the command
//   - Name(): return the command name for dispatch
//
// # Available Commands
//
//   - server: run the REST API and the session sweeper
//   - show: print the form of a configuration file or of a stored app
//   - fmt: re-indent configuration files
//   - edit: apply one structural edit to a configuration file
//   - check: validate the configuration, the store and the DNS server
//
// # Example Usage
//
//	cmd := commands.CreateShowCommand()
//	ctx := &commands.AppContext{ConfigPath: "/opt/etc/keen-console/keen-console.conf"}
//	if err := cmd.Init([]string{"-paths", "app.json"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
