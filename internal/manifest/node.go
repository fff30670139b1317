package manifest

// Attr is one attribute of a Node.
type Attr struct {
	Name  string
	Value Scalar
}

// Node is one element of a manifest tree.
// Value is ignored by Render when Children is non-empty.
type Node struct {
	Name     string
	Attrs    []Attr
	Value    Scalar
	Children []*Node
}

// Element creates a node with the given children.
func Element(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// Leaf creates a childless node carrying a text value.
func Leaf(name string, value Scalar) *Node {
	return &Node{Name: name, Value: value}
}

// WithAttr appends an attribute and returns n for chaining during construction.
func (n *Node) WithAttr(name string, value Scalar) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// WithChildren appends children and returns n for chaining during construction.
func (n *Node) WithChildren(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(name string) (Scalar, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Scalar{}, false
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find follows a path of child names from n and returns the node it ends at,
// or nil when a step is missing. Each step takes the first matching child.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, name := range path {
		if cur == nil {
			return nil
		}
		cur = cur.Child(name)
	}
	return cur
}

// Stringified returns a deep copy of n with every attribute and value
// converted to a string scalar. Parse produces trees in this form.
func (n *Node) Stringified() *Node {
	out := &Node{Name: n.Name, Value: n.Value.Stringified()}
	for _, a := range n.Attrs {
		out.Attrs = append(out.Attrs, Attr{Name: a.Name, Value: a.Value.Stringified()})
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Stringified())
	}
	if len(out.Children) > 0 {
		out.Value = Scalar{}
	}
	return out
}

// WithValue sets the text value and returns n for chaining during construction.
func (n *Node) WithValue(value Scalar) *Node {
	n.Value = value
	return n
}
