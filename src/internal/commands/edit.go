package commands

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
)

// Operations accepted by the edit command besides the jsontree ones.
const (
	editOpAdd    = "add"
	editOpCommit = "commit"
)

func CreateEditCommand() *EditCommand {
	return &EditCommand{
		fs: flag.NewFlagSet("edit", flag.ExitOnError),
	}
}

// EditCommand applies one structural edit to a configuration file.
//
//	edit [-w] <file> set <path> <json>
//	edit [-w] <file> insert <array-path> <json>
//	edit [-w] <file> remove <array-path> <index>
//	edit [-w] <file> add <array-path>
//	edit [-w] <file> commit <path> <text>
//
// Paths are JSON arrays of member names and indices, e.g. '["records",0]'.
type EditCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	write bool
	input string
	op    string
	path  jsontree.Path
	arg   *string
}

func (c *EditCommand) Name() string {
	return c.fs.Name()
}

func (c *EditCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.BoolVar(&c.write, "w", false, "Write result to the file instead of stdout")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	rest := c.fs.Args()
	if len(rest) < 3 {
		return fmt.Errorf("edit: expected <file> <op> <path> [value]")
	}
	c.input, c.op = rest[0], rest[1]
	if c.write && c.input == stdinName {
		return fmt.Errorf("edit: cannot write result to stdin")
	}

	path, err := jsontree.ParsePath(rest[2])
	if err != nil {
		return fmt.Errorf("edit: invalid path %q: %w", rest[2], err)
	}
	c.path = path

	wantArg := true
	switch c.op {
	case string(jsontree.OpSet), string(jsontree.OpInsert), string(jsontree.OpRemove), editOpCommit:
	case editOpAdd:
		wantArg = false
	default:
		return fmt.Errorf("edit: unknown operation %q", c.op)
	}

	switch {
	case wantArg && len(rest) != 4:
		return fmt.Errorf("edit: %s expects a value", c.op)
	case !wantArg && len(rest) != 3:
		return fmt.Errorf("edit: %s takes no value", c.op)
	}
	if wantArg {
		c.arg = &rest[3]
	}
	return nil
}

func (c *EditCommand) Run() error {
	text, _, err := readInput(c.ctx, c.input)
	if err != nil {
		return err
	}

	doc := configdoc.Open(text)
	edit, err := c.edit(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", c.input, err)
	}
	if err := doc.Apply(edit); err != nil {
		return fmt.Errorf("%s: %w", c.input, err)
	}

	if c.write {
		return writeBack(c.input, fileText(doc.Text()))
	}
	_, err = fmt.Fprint(c.ctx.stdout(), fileText(doc.Text()))
	return err
}

func (c *EditCommand) edit(doc *configdoc.Document) (jsontree.Edit, error) {
	switch c.op {
	case string(jsontree.OpSet), string(jsontree.OpInsert):
		v, err := jsonvalue.Parse(*c.arg)
		if err != nil {
			return jsontree.Edit{}, fmt.Errorf("invalid value: %w", err)
		}
		if c.op == string(jsontree.OpSet) {
			return jsontree.Set(c.path, v), nil
		}
		return jsontree.Insert(c.path, v), nil

	case string(jsontree.OpRemove):
		index, err := strconv.Atoi(*c.arg)
		if err != nil {
			return jsontree.Edit{}, fmt.Errorf("invalid index %q", *c.arg)
		}
		return jsontree.Remove(c.path, index), nil
	}

	form := doc.Form()
	if form == nil {
		return jsontree.Edit{}, fmt.Errorf("configuration is %s, edit the raw text instead", doc.State())
	}
	f := formview.Find(form, c.path)
	if f == nil {
		return jsontree.Edit{}, fmt.Errorf("no field at %s", c.path)
	}
	if c.op == editOpAdd {
		return formview.AddItem(f)
	}
	return formview.CommitText(f, *c.arg)
}
