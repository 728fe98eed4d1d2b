package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/keen-console/src/internal/api"
	"github.com/maksimkurb/keen-console/src/internal/commands"
	"github.com/maksimkurb/keen-console/src/internal/log"
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/all"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	api.Version, api.Commit, api.Date = version, commit, date

	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "/opt/etc/keen-console/keen-console.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "DNS/DHCP App Configuration Console\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  server                  Run the REST API server\n")
		fmt.Fprintf(os.Stderr, "  show [-app name] <file> Print the form of an app configuration\n")
		fmt.Fprintf(os.Stderr, "  fmt [-w] [-l] <file>... Re-indent configuration files\n")
		fmt.Fprintf(os.Stderr, "  edit [-w] <file> <op> <path> [value]\n")
		fmt.Fprintf(os.Stderr, "                          Apply set, insert, remove, add or commit to a file\n")
		fmt.Fprintf(os.Stderr, "  check                   Check configuration, store and DNS server\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateServerCommand(),
		commands.CreateShowCommand(),
		commands.CreateFmtCommand(),
		commands.CreateEditCommand(),
		commands.CreateCheckCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
