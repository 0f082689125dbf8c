package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	logout  key.Binding
	refresh key.Binding
	create  key.Binding
	upload  key.Binding
	rename  key.Binding
	delete  key.Binding
	demo    key.Binding
	newOne  key.Binding
	yes     key.Binding
	no      key.Binding

	orbitLeft  key.Binding
	orbitRight key.Binding
	orbitUp    key.Binding
	orbitDown  key.Binding
	panLeft    key.Binding
	panRight   key.Binding
	panUp      key.Binding
	panDown    key.Binding
	zoomIn     key.Binding
	zoomOut    key.Binding
	reset      key.Binding
	prevView   key.Binding
	nextView   key.Binding
	saveView   key.Binding
	copyURL    key.Binding
	attach     key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	logout:  key.NewBinding(key.WithKeys("l")),
	refresh: key.NewBinding(key.WithKeys("r")),
	create:  key.NewBinding(key.WithKeys("c")),
	upload:  key.NewBinding(key.WithKeys("u")),
	rename:  key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("x")),
	demo:    key.NewBinding(key.WithKeys("m")),
	newOne:  key.NewBinding(key.WithKeys("n")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),

	orbitLeft:  key.NewBinding(key.WithKeys("left")),
	orbitRight: key.NewBinding(key.WithKeys("right")),
	orbitUp:    key.NewBinding(key.WithKeys("up")),
	orbitDown:  key.NewBinding(key.WithKeys("down")),
	panLeft:    key.NewBinding(key.WithKeys("a")),
	panRight:   key.NewBinding(key.WithKeys("d")),
	panUp:      key.NewBinding(key.WithKeys("w")),
	panDown:    key.NewBinding(key.WithKeys("s")),
	zoomIn:     key.NewBinding(key.WithKeys("+", "=")),
	zoomOut:    key.NewBinding(key.WithKeys("-")),
	reset:      key.NewBinding(key.WithKeys("0")),
	prevView:   key.NewBinding(key.WithKeys("[")),
	nextView:   key.NewBinding(key.WithKeys("]")),
	saveView:   key.NewBinding(key.WithKeys("v")),
	copyURL:    key.NewBinding(key.WithKeys("c")),
	attach:     key.NewBinding(key.WithKeys("o")),
}
