package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/schedule"
	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		return runTheme(cmd, flags, func(c *theme.Controller) (theme.Theme, error) {
			return c.Current(), nil
		})
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the remembered theme",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the theme the next page will use",
		Args:  cobra.NoArgs,
		RunE:  show,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, func(c *theme.Controller) (theme.Theme, error) {
				return c.Toggle(), nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			return runTheme(cmd, flags, func(c *theme.Controller) (theme.Theme, error) {
				return t, c.Set(t)
			})
		},
	})

	return cmd
}

// runTheme loads the home page, which carries the toggle, so the theme
// controller restores and persists exactly as it does interactively.
func runTheme(cmd *cobra.Command, flags *rootFlags, op func(*theme.Controller) (theme.Theme, error)) error {
	app, err := openApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	page := site.Load(app.Site, site.Home, true, site.Deps{
		Sched:    schedule.NewLoop(),
		Store:    app.Store,
		Settings: app.Site.Settings,
		Log:      app.Log,
	})
	defer page.Unload()

	t, err := op(page.Theme)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}
