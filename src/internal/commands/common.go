package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/config"
	"github.com/maksimkurb/keen-console/src/internal/hashing"
	"github.com/maksimkurb/keen-console/src/internal/store"
	"github.com/maksimkurb/keen-console/src/internal/utils"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Stdout receives command output. Nil means os.Stdout.
	Stdout io.Writer
	// Stdin is read for the "-" file argument. Nil means os.Stdin.
	Stdin io.Reader
}

func (c *AppContext) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *AppContext) stdin() io.Reader {
	if c.Stdin == nil {
		return os.Stdin
	}
	return c.Stdin
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// storeArgs builds the driver arguments of the configured store.
func storeArgs(cfg *config.Config) map[string]string {
	switch cfg.GetStoreDriver() {
	case config.StoreDriverBolt:
		return map[string]string{"path": cfg.GetAbsStorePath()}
	case config.StoreDriverRemote:
		return map[string]string{
			"url":            cfg.GetServerURL(),
			"token":          cfg.GetToken(),
			"operation_path": cfg.GetOperationPath(),
			"timeout":        strconv.Itoa(int(cfg.GetTimeout() / time.Second)),
		}
	}
	return map[string]string{}
}

func openStore(cfg *config.Config) (store.ConfigStore, error) {
	driver := cfg.GetStoreDriver()
	st, err := store.Open(driver, storeArgs(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	return st, nil
}

// readInput returns the content of a file argument and its MD5 checksum.
func readInput(ctx *AppContext, name string) (string, string, error) {
	var r io.Reader
	if name == stdinName {
		r = ctx.stdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", "", fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer utils.CloseOrWarn(f)
		r = f
	}

	proxy := hashing.NewMD5ReaderProxy(r)
	data, err := io.ReadAll(proxy)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	checksum, err := proxy.GetChecksum()
	if err != nil {
		return "", "", err
	}
	return string(data), checksum, nil
}

// writeBack replaces the content of a file argument, keeping its mode.
func writeBack(name, text string) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(name); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := utils.WriteFileAtomic(name, []byte(text), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// fileText terminates serialized configuration text with a newline.
func fileText(text string) string {
	return text + "\n"
}
