package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/folio/internal/site"
)

type keyMap struct {
	Quit       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Jump       key.Binding
	Toggle     key.Binding
	FilterNext key.Binding
	FilterPrev key.Binding
	Focus      key.Binding
	FocusBack  key.Binding
	Activate   key.Binding
	Submit     key.Binding
	Leave      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
		Jump:       key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "go to page")),
		Toggle:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		FilterNext: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/↑", "filter")),
		FilterPrev: key.NewBinding(key.WithKeys("up", "k")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusBack:  key.NewBinding(key.WithKeys("shift+tab")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
	}
}

// forPage enables the bindings that do something on page. While a text
// field has focus only the form keys stay live.
func (k *keyMap) forPage(page site.Page, editing bool) {
	k.Quit.SetEnabled(!editing)
	k.Next.SetEnabled(!editing)
	k.Prev.SetEnabled(!editing)
	k.Jump.SetEnabled(!editing)
	k.Toggle.SetEnabled(!editing && page == site.Home)
	k.FilterNext.SetEnabled(!editing && page == site.Projects)
	k.FilterPrev.SetEnabled(!editing && page == site.Projects)
	k.Focus.SetEnabled(page == site.Home || page == site.Contact)
	k.FocusBack.SetEnabled(page == site.Home || page == site.Contact)
	k.Activate.SetEnabled(!editing && (page == site.Home || page == site.Contact))
	k.Submit.SetEnabled(page == site.Contact)
	k.Leave.SetEnabled(editing)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Toggle, k.FilterNext, k.Focus, k.Activate, k.Submit, k.Leave, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.Toggle, k.FilterNext, k.FilterPrev},
		{k.Focus, k.FocusBack, k.Activate, k.Submit, k.Leave},
		{k.Quit},
	}
}
