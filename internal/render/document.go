package render

// Document is one rendered page: a root element plus page-level signals.
type Document struct {
	Title string

	root        *Element
	hidden      bool
	ready       bool
	onReady     []func()
	onVisChange []func()
}

// NewDocument wraps root as a page. A nil root gets an empty block.
func NewDocument(title string, root *Element) *Document {
	if root == nil {
		root = New(KindBlock)
	}
	return &Document{Title: title, root: root}
}

// Root returns the page root, the element the theme markers live on.
func (d *Document) Root() *Element {
	return d.root
}

// ByID finds an element anywhere in the page.
func (d *Document) ByID(id string) *Element {
	return d.root.Find(id)
}

// All returns every element carrying class, in document order.
func (d *Document) All(class string) []*Element {
	return d.root.QueryAll(class)
}

// OnReady registers fn to run when the page becomes ready. Registering after
// the page is ready runs fn immediately.
func (d *Document) OnReady(fn func()) {
	if d.ready {
		fn()
		return
	}
	d.onReady = append(d.onReady, fn)
}

// Ready fires the ready event once.
func (d *Document) Ready() {
	if d.ready {
		return
	}
	d.ready = true
	handlers := d.onReady
	d.onReady = nil
	for _, fn := range handlers {
		fn()
	}
}

// Hidden reports whether the page is currently not displayed.
func (d *Document) Hidden() bool {
	return d.hidden
}

// OnVisibilityChange registers fn to run after every visibility transition.
func (d *Document) OnVisibilityChange(fn func()) {
	d.onVisChange = append(d.onVisChange, fn)
}

// SetHidden updates visibility and notifies listeners when it changes.
func (d *Document) SetHidden(hidden bool) {
	if d.hidden == hidden {
		return
	}
	d.hidden = hidden
	for _, fn := range d.onVisChange {
		fn()
	}
}
