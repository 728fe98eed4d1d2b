package commands

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"

	"github.com/maksimkurb/keen-console/src/internal/config"
	"github.com/maksimkurb/keen-console/src/internal/log"
	"github.com/maksimkurb/keen-console/src/internal/probe"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

func CreateCheckCommand() *CheckCommand {
	return &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
}

// CheckCommand validates the configuration, lists the apps of the store and
// probes the DNS server.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	dump    bool
	skipDNS bool
}

func (c *CheckCommand) Name() string {
	return c.fs.Name()
}

func (c *CheckCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.BoolVar(&c.dump, "dump", false, "Print the effective configuration")
	c.fs.BoolVar(&c.skipDNS, "skip-dns", false, "Do not probe the DNS server")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *CheckCommand) Run() error {
	out := c.ctx.stdout()
	fmt.Fprintf(out, "configuration: ok (%s)\n", c.ctx.ConfigPath)

	if c.dump {
		buf, err := c.cfg.SerializeConfig()
		if err != nil {
			return fmt.Errorf("failed to serialize configuration: %w", err)
		}
		fmt.Fprintln(out, "---------------- Configuration START -----------------")
		if _, err := io.Copy(out, buf); err != nil {
			return err
		}
		fmt.Fprintln(out, "----------------- Configuration END ------------------")
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.GetTimeout())
	defer cancel()

	if err := c.checkStore(ctx, out); err != nil {
		return err
	}
	if c.skipDNS {
		return nil
	}
	return c.checkDNS(ctx, out)
}

func (c *CheckCommand) checkStore(ctx context.Context, out io.Writer) error {
	st, err := openStore(c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	apps, err := store.List(ctx, st)
	switch {
	case stderrors.Is(err, store.ErrListUnsupported):
		fmt.Fprintf(out, "store: ok (%s)\n", c.cfg.GetStoreDriver())
		return nil
	case err != nil:
		return fmt.Errorf("store %s: %w", c.cfg.GetStoreDriver(), err)
	}

	fmt.Fprintf(out, "store: ok (%s, %d apps)\n", c.cfg.GetStoreDriver(), len(apps))
	for _, app := range apps {
		fmt.Fprintf(out, "  %s\n", app)
	}
	return nil
}

func (c *CheckCommand) checkDNS(ctx context.Context, out io.Writer) error {
	res, err := probe.DNS(ctx, c.cfg.GetDNSAddress(), c.cfg.GetTimeout())
	if err != nil {
		log.Errorf("DNS server at %s does not answer: %v", c.cfg.GetDNSAddress(), err)
		return fmt.Errorf("dns: %w", err)
	}

	version := res.Version
	if version == "" {
		version = "unknown version"
	}
	fmt.Fprintf(out, "dns: ok (%s, %s, rtt %v)\n", res.Address, version, res.RTT)
	return nil
}
