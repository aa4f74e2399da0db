package render

// Event names delivered by hosts.
const (
	EventClick  = "click"
	EventChange = "change"
	EventSubmit = "submit"
)

// Event describes a dispatched user interaction.
type Event struct {
	Type   string
	Target *Element

	defaultPrevented bool
}

// PreventDefault suppresses the host's default handling, such as a form
// submission navigating away from the page.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// Listener handles an event delivered to an element.
type Listener func(ev *Event)

// On registers fn for events of the given type on this element.
func (e *Element) On(eventType string, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// Dispatch delivers an event of the given type to this element's listeners
// in registration order and returns it so hosts can inspect PreventDefault.
func (e *Element) Dispatch(eventType string) *Event {
	ev := &Event{Type: eventType, Target: e}
	for _, fn := range e.listeners[eventType] {
		fn(ev)
	}
	return ev
}

// HasListener reports whether anything listens for eventType on e.
func (e *Element) HasListener(eventType string) bool {
	return len(e.listeners[eventType]) > 0
}
