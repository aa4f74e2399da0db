// Package contact validates the contact form and reports the outcome in the
// form's note line. Sending is simulated.
package contact

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
)

const (
	FormID    = "contactForm"
	NameID    = "name"
	EmailID   = "email"
	MessageID = "message"
	NoteID    = "formNote"

	SuccessText  = "Message sent! (simulated)"
	ErrorColor   = "#ff7070"
	SuccessColor = "#4ad28e"

	DefaultClearAfter = 4000 * time.Millisecond
)

// Resetter empties every field of a form.
type Resetter interface {
	Reset()
}

// Options tunes the controller.
type Options struct {
	// ClearAfter is how long the success note stays up. Zero means
	// DefaultClearAfter.
	ClearAfter time.Duration
	// CancelPendingClear drops an earlier scheduled clear when the form is
	// submitted again. When false every success schedules its own clear and
	// none are cancelled.
	CancelPendingClear bool
	Log                *logger.Logger
}

// Result is the outcome of one submission.
type Result struct {
	OK     bool
	Errors []string
}

// Controller handles submissions of the contact form.
type Controller struct {
	form    Resetter
	name    render.Field
	email   render.Field
	message render.Field
	note    render.Target
	sched   schedule.Scheduler
	opts    Options
	pending schedule.Handle
}

// New builds a controller over explicit targets.
func New(form Resetter, name, email, message render.Field, note render.Target, sched schedule.Scheduler, opts Options) *Controller {
	if opts.ClearAfter <= 0 {
		opts.ClearAfter = DefaultClearAfter
	}
	return &Controller{
		form:    form,
		name:    name,
		email:   email,
		message: message,
		note:    note,
		sched:   sched,
		opts:    opts,
	}
}

// Setup binds the controller to the page's contact form. It returns nil when
// the form, any of its three inputs, or the note line is missing.
func Setup(doc *render.Document, sched schedule.Scheduler, opts Options) *Controller {
	form := doc.ByID(FormID)
	if form == nil {
		return nil
	}
	name, email, message, note := doc.ByID(NameID), doc.ByID(EmailID), doc.ByID(MessageID), doc.ByID(NoteID)
	if name == nil || email == nil || message == nil || note == nil {
		opts.Log.Debug("contact form incomplete, submissions disabled")
		return nil
	}

	c := New(form, name, email, message, note, sched, opts)
	form.On(render.EventSubmit, func(ev *render.Event) {
		ev.PreventDefault()
		c.Submit()
	})
	return c
}

// Submit validates the current field values. On failure the joined messages
// are shown in the error color and the fields are kept. On success the note
// shows the success text, the form is reset and the note is cleared after
// the configured delay.
func (c *Controller) Submit() Result {
	if c.opts.CancelPendingClear && c.pending != 0 {
		c.sched.Cancel(c.pending)
		c.pending = 0
	}
	c.note.SetText("")

	sub := NewSubmission(c.name.Value(), c.email.Value(), c.message.Value())
	if errs := Validate(sub); len(errs) > 0 {
		c.note.SetText(strings.Join(errs, " "))
		c.note.SetColor(ErrorColor)
		c.opts.Log.WithFields(map[string]any{"failures": len(errs)}).Debug("contact form rejected")
		return Result{Errors: errs}
	}

	c.note.SetText(SuccessText)
	c.note.SetColor(SuccessColor)
	c.form.Reset()
	c.pending = c.sched.After(c.opts.ClearAfter, func() {
		c.note.SetText("")
	})

	c.opts.Log.WithFields(map[string]any{"name": sub.Name, "email": sub.Email}).Info("contact message accepted (simulated)")
	return Result{OK: true}
}
