package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

type renderOptions struct {
	page  string
	after time.Duration
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a page as it looks after a given time",
		Long: `Load a page without taking over the terminal, let its timers and
animations run for --after, then print the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.page, "page", "p", string(site.Home), "Page to render (home, skills, projects, contact)")
	cmd.Flags().DurationVar(&opts.after, "after", 0, "Simulated time since the page loaded")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Output width (defaults to the terminal width, or 80)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts renderOptions) error {
	page, err := site.ParsePage(opts.page)
	if err != nil {
		return err
	}
	if opts.after < 0 {
		return fmt.Errorf("--after must not be negative")
	}

	app, err := openApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	m := tui.NewModel(tui.Options{
		Site:  app.Site,
		Page:  page,
		Store: app.Store,
		Width: width,
		Log:   app.Log,
	})
	m.Advance(opts.after)
	app.Log.WithFields(map[string]any{"page": page, "after": opts.after.String()}).Debug("rendered page")

	fmt.Fprintln(cmd.OutOrStdout(), m.View())
	return nil
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return tui.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return tui.DefaultWidth
	}
	return width
}
