package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
	"github.com/alexisbeaulieu97/folio/internal/site"
)

type contactOptions struct {
	name    string
	email   string
	message string
}

// errRejected signals a submission that failed validation.
var errRejected = errors.New("message not sent")

func newContactCmd(flags *rootFlags) *cobra.Command {
	opts := contactOptions{}

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit the contact form",
		Long: `Fill in and submit the contact form. The note shown under the form is
printed; invalid input exits with an error. Sending is simulated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContact(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Your name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Your email address")
	cmd.Flags().StringVar(&opts.message, "message", "", "Your message")

	return cmd
}

func runContact(cmd *cobra.Command, flags *rootFlags, opts contactOptions) error {
	app, err := openApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	loop := schedule.NewLoop()
	page := site.Load(app.Site, site.Contact, true, site.Deps{
		Sched:    loop,
		Store:    app.Store,
		Settings: app.Site.Settings,
		Now:      time.Now,
		Log:      app.Log,
	})
	defer page.Unload()

	doc := page.Doc
	doc.ByID(contact.NameID).SetValue(opts.name)
	doc.ByID(contact.EmailID).SetValue(opts.email)
	doc.ByID(contact.MessageID).SetValue(opts.message)

	res := page.Contact.Submit()
	fmt.Fprintln(cmd.OutOrStdout(), doc.ByID(contact.NoteID).Text())
	if !res.OK {
		return fmt.Errorf("%w: %d field(s) invalid", errRejected, len(res.Errors))
	}
	return nil
}
