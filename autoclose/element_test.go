package autoclose

import "slices"

// node is a minimal element tree used in tests. Selectors are ".class".
type node struct {
	name    string
	parent  *node
	classes []string
}

func newNode(name string, parent *node, classes ...string) *node {
	return &node{name: name, parent: parent, classes: classes}
}

func (n *node) Contains(other Element) bool {
	o, ok := other.(*node)
	if !ok {
		return false
	}

	for ; o != nil; o = o.parent {
		if o == n {
			return true
		}
	}

	return false
}

func (n *node) Closest(selector string) bool {
	for c := n; c != nil; c = c.parent {
		if slices.Contains(c.classes, selector[1:]) {
			return true
		}
	}

	return false
}

// detach removes the node from its parent.
func (n *node) detach() {
	n.parent = nil
}

// page is a document with a toggle button and a dropdown menu.
type page struct {
	body, outside, toggle, menu, item, form, input *node
}

func newPage() *page {
	body := newNode("body", nil)
	menu := newNode("menu", body, "dropdown-menu")
	form := newNode("form", menu, "close-on-click")

	return &page{
		body:    body,
		outside: newNode("outside", body),
		toggle:  newNode("toggle", body),
		menu:    menu,
		item:    newNode("item", menu, "dropdown-item"),
		form:    form,
		input:   newNode("input", form),
	}
}
