package events

// Element is a node of the rendered component tree. Only the parent link is
// tracked, which is all that containment checks need.
type Element struct {
	ID     string
	Parent *Element
}

func NewElement(id string, parent *Element) *Element {
	return &Element{ID: id, Parent: parent}
}

// Contains reports whether other is e or one of e's descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil {
		return false
	}
	for n := other; n != nil; n = n.Parent {
		if n == e {
			return true
		}
	}
	return false
}
