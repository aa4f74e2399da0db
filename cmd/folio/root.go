package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/site"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

type rootFlags struct {
	configPath     string
	logFile        string
	verbose        bool
	page           string
	visibleOnStart bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio is a personal portfolio you browse in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Site file (defaults to $FOLIO_CONFIG or the built-in site)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&flags.page, "page", "p", string(site.Home), "Page to open (home, skills, projects, contact)")
	cmd.Flags().BoolVar(&flags.visibleOnStart, "visible-on-start", true, "Start the session timer before the terminal reports focus")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newContactCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	page, err := site.ParsePage(flags.page)
	if err != nil {
		return err
	}

	app, err := openApp(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	m := tui.NewModel(tui.Options{
		Site:   app.Site,
		Page:   page,
		Store:  app.Store,
		Hidden: !flags.visibleOnStart,
		Width:  terminalWidth(cmd.OutOrStdout()),
		Log:    app.Log,
	})

	app.Log.WithFields(map[string]any{"page": page}).Info("launching folio")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "folio exited with an error")
		return fmt.Errorf("failed to run folio: %w", err)
	}
	app.Log.Info("folio closed")
	return nil
}
