package ixml

// NodeKind tags the variant a Node represents. It is immutable after
// creation.
type NodeKind int

const (
	KindDocument NodeKind = iota
	KindElement
	KindText
	KindCDATA
	KindComment
	KindPI
)

func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindCDATA:
		return "CDATA"
	case KindComment:
		return "Comment"
	case KindPI:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}

// Node is a tagged variant with a common header (kind, sibling links,
// parent) and per-kind payloads, per spec.md's data model:
//
//   - Element: Name, plus an ordered Attribute list.
//   - Text / CDATA / Comment: Value.
//   - ProcessingInstruction: Name (target) and Value.
//   - Document: no payload; owns the arenas.
//
// Nodes are arena-allocated and born detached (Parent == nil). They are
// attached to a tree exclusively through AppendChild / InsertBefore, and
// detached through RemoveChild. There is no per-node destructor: the
// whole arena is released at once by Document.Clear.
type Node struct {
	kind NodeKind
	doc  *Document
	gen  uint64

	parent     *Node
	prev, next *Node

	firstChild *Node // Document, Element
	lastChild  *Node

	firstAttr *Attribute // Element only
	lastAttr  *Attribute

	name  []byte // Element name; PI target
	value []byte // Text / CDATA / Comment value; PI value
}

// checkLive panics if n was allocated by a Document that has since been
// Clear()-ed. gen is stamped at creation time and compared against the
// document's current generation counter — the generational tagging
// spec.md's §5 resource model calls for in a GC'd language, where there is
// no borrow checker to statically forbid use-after-clear.
func (n *Node) checkLive() {
	if n.doc != nil && n.gen != n.doc.generation {
		panic("ixml: use of a node from a cleared Document")
	}
}

// Kind returns the node's tag.
func (n *Node) Kind() NodeKind { return n.kind }

// Name returns the element name or PI target. Empty for other kinds.
func (n *Node) Name() []byte { return n.name }

// Value returns the text/CDATA/comment/PI value. Empty for other kinds.
func (n *Node) Value() []byte { return n.value }

// Parent returns the owning node, or nil for Document and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Prev returns the previous sibling, or nil.
func (n *Node) Prev() *Node { return n.prev }

// Next returns the next sibling, or nil.
func (n *Node) Next() *Node { return n.next }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// FirstAttribute returns the first attribute of an Element, or nil.
func (n *Node) FirstAttribute() *Attribute { return n.firstAttr }

// LastAttribute returns the last attribute of an Element, or nil.
func (n *Node) LastAttribute() *Attribute { return n.lastAttr }

// Attributes returns a newly built slice of the element's attributes in
// order. For hot paths, prefer walking FirstAttribute/Next directly.
func (n *Node) Attributes() []*Attribute {
	var out []*Attribute
	for a := n.firstAttr; a != nil; a = a.next {
		out = append(out, a)
	}
	return out
}

// AppendChild appends child to the end of n's child list. child must be
// detached (Parent() == nil); this is a programmer-error precondition,
// not a recoverable error, and panics if violated.
func (n *Node) AppendChild(child *Node) {
	n.checkLive()
	child.checkLive()
	if child.parent != nil {
		panic("ixml: AppendChild requires a detached child")
	}
	if n.lastChild == nil {
		n.firstChild = child
	} else {
		n.lastChild.next = child
		child.prev = n.lastChild
	}
	n.lastChild = child
	child.parent = n
}

// InsertBefore inserts child immediately before ref in n's child list.
// Preconditions: child is detached and ref is a current child of n.
func (n *Node) InsertBefore(child, ref *Node) {
	n.checkLive()
	child.checkLive()
	if child.parent != nil {
		panic("ixml: InsertBefore requires a detached child")
	}
	if ref == nil || ref.parent != n {
		panic("ixml: InsertBefore requires ref to be a child of n")
	}
	ref.checkLive()
	child.prev = ref.prev
	child.next = ref
	if ref.prev != nil {
		ref.prev.next = child
	} else {
		n.firstChild = child
	}
	ref.prev = child
	child.parent = n
}

// RemoveChild detaches child from n's child list. child must currently be
// a child of n.
func (n *Node) RemoveChild(child *Node) {
	n.checkLive()
	child.checkLive()
	if child.parent != n {
		panic("ixml: RemoveChild requires child to belong to n")
	}
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		n.firstChild = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		n.lastChild = child.prev
	}
	child.parent, child.prev, child.next = nil, nil, nil
}

// AppendAttribute appends a to n's attribute list. n must be an Element.
func (n *Node) AppendAttribute(a *Attribute) {
	n.checkLive()
	a.checkLive()
	if n.kind != KindElement {
		panic("ixml: AppendAttribute requires an Element node")
	}
	if a.parent != nil {
		panic("ixml: AppendAttribute requires a detached attribute")
	}
	if n.lastAttr == nil {
		n.firstAttr = a
	} else {
		n.lastAttr.next = a
		a.prev = n.lastAttr
	}
	n.lastAttr = a
	a.parent = n
}

// RemoveAttribute detaches a from n's attribute list.
func (n *Node) RemoveAttribute(a *Attribute) {
	n.checkLive()
	a.checkLive()
	if a.parent != n {
		panic("ixml: RemoveAttribute requires a to belong to n")
	}
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		n.firstAttr = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	} else {
		n.lastAttr = a.prev
	}
	a.parent, a.prev, a.next = nil, nil, nil
}

// Attribute is a name/value pair on an Element. It is not a Node, but
// uses the same intrusive doubly-linked layout, with Parent pointing back
// to the owning Element.
type Attribute struct {
	doc *Document
	gen uint64

	parent     *Node
	prev, next *Attribute

	name  []byte
	value []byte
}

func (a *Attribute) checkLive() {
	if a.doc != nil && a.gen != a.doc.generation {
		panic("ixml: use of an attribute from a cleared Document")
	}
}

// Name returns the attribute name.
func (a *Attribute) Name() []byte { return a.name }

// Value returns the attribute value.
func (a *Attribute) Value() []byte { return a.value }

// Parent returns the owning Element.
func (a *Attribute) Parent() *Node { return a.parent }

// Prev returns the previous attribute, or nil.
func (a *Attribute) Prev() *Attribute { return a.prev }

// Next returns the next attribute, or nil.
func (a *Attribute) Next() *Attribute { return a.next }
