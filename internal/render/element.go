package render

import (
	"strings"
)

// Kind identifies what sort of control an element represents.
type Kind string

const (
	KindBlock    Kind = "block"
	KindButton   Kind = "button"
	KindSelect   Kind = "select"
	KindOption   Kind = "option"
	KindForm     Kind = "form"
	KindInput    Kind = "input"
	KindTextArea Kind = "textarea"
	KindText     Kind = "text"
)

// Target is the render capability shared by every controller.
type Target interface {
	SetText(text string)
	Text() string
	SetWidth(percent float64)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	ReplaceClass(oldName, newName string) bool
	Attr(name string) (string, bool)
	SetVisible(visible bool)
	SetColor(color string)
	Blur()
}

// Field is a Target that also holds user-entered text.
type Field interface {
	Target
	Value() string
	SetValue(value string)
}

// Element is a single node of the page tree.
type Element struct {
	kind      Kind
	id        string
	classes   []string
	attrs     map[string]string
	text      string
	value     string
	width     float64
	hidden    bool
	color     string
	focused   bool
	parent    *Element
	children  []*Element
	listeners map[string][]Listener
}

var _ Field = (*Element)(nil)

// New creates an element of the given kind.
func New(kind Kind) *Element {
	return &Element{kind: kind, attrs: make(map[string]string)}
}

// WithID sets the element id and returns the element for chaining.
func (e *Element) WithID(id string) *Element {
	e.id = id
	return e
}

// WithClass appends classes and returns the element for chaining.
func (e *Element) WithClass(names ...string) *Element {
	for _, name := range names {
		e.AddClass(name)
	}
	return e
}

// WithAttr sets a data attribute and returns the element for chaining.
func (e *Element) WithAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// WithText sets the text and returns the element for chaining.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

// Append adds children in order and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

func (e *Element) Kind() Kind { return e.kind }
func (e *Element) ID() string { return e.id }
func (e *Element) Parent() *Element { return e.parent }
func (e *Element) Children() []*Element { return e.children }
func (e *Element) Text() string { return e.text }
func (e *Element) SetText(text string) { e.text = text }
func (e *Element) Value() string { return e.value }
func (e *Element) SetValue(value string) { e.value = value }
func (e *Element) Width() float64 { return e.width }
func (e *Element) Visible() bool { return !e.hidden }
func (e *Element) SetVisible(v bool) { e.hidden = !v }
func (e *Element) Color() string { return e.color }
func (e *Element) SetColor(color string) { e.color = color }
func (e *Element) Focused() bool { return e.focused }
func (e *Element) Focus() { e.focused = true }
func (e *Element) Blur() { e.focused = false }

// SetWidth records the fill width as a percentage of the container.
func (e *Element) SetWidth(percent float64) {
	e.width = percent
}

// Attr returns a data attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// ClassName returns the class list joined by single spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetClassName replaces the whole class list with the whitespace separated
// names in raw. Duplicates collapse to their first occurrence.
func (e *Element) SetClassName(raw string) {
	e.classes = e.classes[:0]
	for _, name := range strings.Fields(raw) {
		e.AddClass(name)
	}
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	return e.classIndex(name) >= 0
}

// AddClass appends name unless already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass drops name from the class list.
func (e *Element) RemoveClass(name string) {
	idx := e.classIndex(name)
	if idx < 0 {
		return
	}
	e.classes = append(e.classes[:idx], e.classes[idx+1:]...)
}

// ReplaceClass swaps oldName for newName in place. It does nothing and
// returns false when oldName is absent. When newName is already present the
// old entry is simply removed.
func (e *Element) ReplaceClass(oldName, newName string) bool {
	idx := e.classIndex(oldName)
	if idx < 0 {
		return false
	}
	if oldName == newName {
		return true
	}
	if e.HasClass(newName) {
		e.RemoveClass(oldName)
		return true
	}
	e.classes[idx] = newName
	return true
}

func (e *Element) classIndex(name string) int {
	for i, c := range e.classes {
		if c == name {
			return i
		}
	}
	return -1
}

// Find returns the first element in this subtree, the receiver included,
// with the given id.
func (e *Element) Find(id string) *Element {
	if e == nil || id == "" {
		return nil
	}
	if e.id == id {
		return e
	}
	for _, child := range e.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns the descendants carrying class, in document order. The
// receiver itself is not considered.
func (e *Element) QueryAll(class string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, child := range e.children {
		if child.HasClass(class) {
			out = append(out, child)
		}
		out = append(out, child.QueryAll(class)...)
	}
	return out
}

// Query returns the first descendant carrying class.
func (e *Element) Query(class string) *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.children {
		if child.HasClass(class) {
			return child
		}
		if found := child.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// Options returns the values of a select element's option children.
func (e *Element) Options() []string {
	var out []string
	for _, child := range e.children {
		if child.kind != KindOption {
			continue
		}
		v, _ := child.Attr("value")
		out = append(out, v)
	}
	return out
}

// Reset clears the value of every input and textarea below a form.
func (e *Element) Reset() {
	for _, child := range e.children {
		if child.kind == KindInput || child.kind == KindTextArea {
			child.value = ""
		}
		child.Reset()
	}
}
