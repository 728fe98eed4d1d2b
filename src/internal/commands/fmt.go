package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/hashing"
	"github.com/maksimkurb/keen-console/src/internal/log"
)

func CreateFmtCommand() *FmtCommand {
	return &FmtCommand{
		fs: flag.NewFlagSet("fmt", flag.ExitOnError),
	}
}

// FmtCommand re-indents configuration files the way structural edits
// serialize them.
type FmtCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	write bool
	list  bool
	files []string
}

func (c *FmtCommand) Name() string {
	return c.fs.Name()
}

func (c *FmtCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.BoolVar(&c.write, "w", false, "Write result to the file instead of stdout")
	c.fs.BoolVar(&c.list, "l", false, "List files whose formatting differs")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	c.files = c.fs.Args()
	if len(c.files) == 0 {
		return fmt.Errorf("fmt: expected at least one file argument")
	}
	if c.write {
		for _, f := range c.files {
			if f == stdinName {
				return fmt.Errorf("fmt: cannot write result to stdin")
			}
		}
	}
	return nil
}

func (c *FmtCommand) Run() error {
	var invalid []string
	for _, name := range c.files {
		if err := c.format(name); err != nil {
			log.Errorf("%v", err)
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("failed to format: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func (c *FmtCommand) format(name string) error {
	text, checksum, err := readInput(c.ctx, name)
	if err != nil {
		return err
	}

	doc := configdoc.Open(text)
	switch doc.State() {
	case configdoc.StateInvalid:
		return fmt.Errorf("%s: %s", name, doc.Message())
	case configdoc.StateEmpty:
		log.Debugf("%s: no configuration, left unchanged", name)
		return nil
	}

	formatted := fileText(doc.Text())
	changed := hashing.TextChecksum(formatted) != checksum

	out := c.ctx.stdout()
	if !c.list && !c.write {
		_, err = fmt.Fprint(out, formatted)
		return err
	}
	if !changed {
		log.Debugf("%s: already formatted", name)
		return nil
	}
	if c.list {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	if c.write {
		return writeBack(name, formatted)
	}
	return nil
}
