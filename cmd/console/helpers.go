package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/ui"
)

func (cli *commandLine) ctx() context.Context { return context.Background() }

// printOutcome reports a single-action result to the terminal.
func (cli *commandLine) printOutcome(res client.Outcome, okMsg string) error {
	if !res.Success {
		msgs := res.Errors.Flatten()
		if len(msgs) == 0 && res.Message != "" {
			msgs = []string{res.Message}
		}
		for _, msg := range msgs {
			fmt.Fprintf(cli.out, "[error] %s\n", msg)
		}
		return nil
	}
	if res.Message != "" {
		okMsg = res.Message
	}
	fmt.Fprintf(cli.out, "[ok] %s\n", okMsg)
	return nil
}

// deleter lets deleteByID work across every entity controller.
type deleter interface {
	Delete(ctx context.Context, id int, confirm func() bool) bool
}

// flushNotes prints every collected notification, prefixed by level.
func (cli *commandLine) flushNotes(notes *ui.MemoryNotifier) {
	for _, n := range notes.Notifications() {
		var prefix string
		switch n.Level {
		case ui.LevelError:
			prefix = "error"
		case ui.LevelWarning:
			prefix = "aviso"
		case ui.LevelSuccess:
			prefix = "ok"
		default:
			prefix = "info"
		}
		fmt.Fprintf(cli.out, "[%s] %s\n", prefix, n.Message)
	}
	notes.Clear()
}

// runList mounts the controller, prints one line per row and the paging
// footer.
func runList[T any](cli *commandLine, c *ui.ListController[T], notes *ui.MemoryNotifier, row func(T) string) error {
	c.Start(cli.ctx())
	cli.flushNotes(notes)
	if c.State() != ui.StateLoaded {
		return nil // the failure notification was already printed
	}
	for _, rec := range c.Rows() {
		fmt.Fprintln(cli.out, row(rec))
	}
	from, to := c.Range()
	fmt.Fprintf(cli.out, "página %d/%d (%d-%d de %d)\n", c.Page(), c.TotalPages(), from, to, c.Total())
	return nil
}

// runExport streams the controller's CSV export into a file. The filename
// defaults to the controller's {entity}_{date}.csv pattern.
func runExport[T any](cli *commandLine, c *ui.ListController[T], notes *ui.MemoryNotifier, outPath string) error {
	var buf bytes.Buffer
	name, ok := c.Export(cli.ctx(), &buf)
	cli.flushNotes(notes)
	if !ok {
		return nil
	}
	if outPath == "" {
		outPath = name
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "exportado a %s\n", outPath)
	return nil
}

// submitForm fills the controller's form from parsed flag values and
// submits it.
func submitForm[T any](cli *commandLine, c *ui.ListController[T], notes *ui.MemoryNotifier, values map[string]string) error {
	form := c.Form()
	for name, val := range values {
		form.Set(name, val)
	}
	c.Submit(cli.ctx())
	cli.flushNotes(notes)
	return nil
}
