package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	quit     key.Binding
	forceQ   key.Binding
	copy     key.Binding
	sign     key.Binding
	balance  key.Binding
	save     key.Binding
	generate key.Binding
	reload   key.Binding
	delete   key.Binding
}

// Letter bindings only fire on pages without an input buffer.
var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	back:     key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	copy:     key.NewBinding(key.WithKeys("c")),
	sign:     key.NewBinding(key.WithKeys("s")),
	balance:  key.NewBinding(key.WithKeys("b")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	reload:   key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
}
