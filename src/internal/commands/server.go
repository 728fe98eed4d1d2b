package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/api"
	"github.com/maksimkurb/keen-console/src/internal/config"
	"github.com/maksimkurb/keen-console/src/internal/log"
	"github.com/maksimkurb/keen-console/src/internal/probe"
	"github.com/maksimkurb/keen-console/src/internal/session"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

// ServerCommand runs the REST API of the console.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	bindAddr      string
	sweepInterval time.Duration

	// signals stops Run when it receives; tests replace it.
	signals chan os.Signal
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ExitOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (default: general.api_bind_address)")
	c.fs.DurationVar(&c.sweepInterval, "sweep-interval", time.Minute, "How often idle sessions are expired")

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.sweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %v", c.sweepInterval)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.GetAPIBindAddress()
	}
	return nil
}

// dependencies opens the store and builds everything the API needs.
func (c *ServerCommand) dependencies() (api.Dependencies, error) {
	st, err := openStore(c.cfg)
	if err != nil {
		return api.Dependencies{}, err
	}

	dnsAddr, timeout := c.cfg.GetDNSAddress(), c.cfg.GetTimeout()
	return api.Dependencies{
		Sessions:    session.NewManager(st, c.cfg.GetSessionTTL()),
		Store:       st,
		StoreDriver: c.cfg.GetStoreDriver(),
		Probe: func(ctx context.Context) (probe.Result, error) {
			return probe.DNS(ctx, dnsAddr, timeout)
		},
		UIPath: c.cfg.GetUIPath(),
	}, nil
}

// Run starts the HTTP API server and blocks until a signal or a server error.
func (c *ServerCommand) Run() error {
	log.Infof("Starting keen-console API server on %s", c.bindAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	log.Infof("Store driver: %s", c.cfg.GetStoreDriver())
	log.Infof("Access restricted to private subnets only")

	deps, err := c.dependencies()
	if err != nil {
		return err
	}
	defer closeStore(deps.Store)

	sweeper := NewRestartableRunner(RunnerConfig{Name: "session-sweeper"}, func(ctx context.Context) error {
		deps.Sessions.Run(ctx, c.sweepInterval)
		return nil
	})
	if err := sweeper.Start(context.Background()); err != nil {
		return err
	}
	defer func() {
		if err := sweeper.Stop(); err != nil {
			log.Errorf("Failed to stop session sweeper: %v", err)
		}
	}()

	server := api.NewServer(c.bindAddr, api.NewRouter(deps, api.NewMetrics(deps.Sessions)))

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := c.signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)
	}

	select {
	case err := <-serverErrors:
		if err != nil {
			return err
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if open := deps.Sessions.Len(); open > 0 {
			log.Warnf("Discarding %d open session(s)", open)
		}
		log.Infof("Server stopped gracefully")
	}

	return nil
}

func closeStore(st store.ConfigStore) {
	if err := st.Close(); err != nil {
		log.Warnf("Failed to close store: %v", err)
	}
}
