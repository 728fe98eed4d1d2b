package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/render"
)

func CreateShowCommand() *ShowCommand {
	return &ShowCommand{
		fs: flag.NewFlagSet("show", flag.ExitOnError),
	}
}

// ShowCommand prints the form of an app configuration, read from a file or
// from the configured store.
type ShowCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	app   string
	input string
	paths bool
	color bool
}

func (c *ShowCommand) Name() string {
	return c.fs.Name()
}

func (c *ShowCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.StringVar(&c.app, "app", "", "Load the configuration of this app from the configured store")
	c.fs.BoolVar(&c.paths, "paths", false, "Print the path of every field")
	c.fs.BoolVar(&c.color, "color", isTerminal(ctx), "Colorize output")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	switch {
	case c.app != "" && c.fs.NArg() > 0:
		return fmt.Errorf("show: either -app or a file, not both")
	case c.app == "" && c.fs.NArg() != 1:
		return fmt.Errorf("show: expected one file argument (use %q for stdin)", stdinName)
	}
	c.input = c.fs.Arg(0)
	return nil
}

func (c *ShowCommand) Run() error {
	title, text, err := c.load()
	if err != nil {
		return err
	}

	doc := configdoc.Open(text)
	_, err = fmt.Fprint(c.ctx.stdout(), render.Document(title, doc, render.Options{
		Color: c.color,
		Paths: c.paths,
	}))
	return err
}

func (c *ShowCommand) load() (title, text string, err error) {
	if c.app == "" {
		text, _, err = readInput(c.ctx, c.input)
		return c.input, text, err
	}

	cfg, err := loadAndValidateConfigOrFail(c.ctx.ConfigPath)
	if err != nil {
		return "", "", err
	}
	st, err := openStore(cfg)
	if err != nil {
		return "", "", err
	}
	defer closeStore(st)

	text, err = st.LoadConfig(context.Background(), c.app)
	if err != nil {
		return "", "", fmt.Errorf("failed to load configuration of %s: %w", c.app, err)
	}
	return c.app, text, nil
}

func isTerminal(ctx *AppContext) bool {
	f, ok := ctx.stdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
