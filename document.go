package ixml

// Document owns the arena that backs every Node and Attribute created
// through it. It is the root of the tree: its own child list may hold the
// root Element plus any number of Comment/PI nodes, per spec.md invariant
// 6.
//
// A Document owns exactly one pair of arenas (nodes, attributes). Clear
// resets both in one step and bumps the generation counter, which
// invalidates every node and attribute handed out before the call — using
// any of them afterwards panics instead of corrupting a fresh tree.
type Document struct {
	root Node

	nodeArena arena[Node]
	attrArena arena[Attribute]

	generation uint64
}

// NewDocument returns an empty, ready-to-use Document.
func NewDocument() *Document {
	d := &Document{}
	d.root.kind = KindDocument
	d.root.doc = d
	return d
}

// Root returns the Document's own node — the tree root that the Document's
// top-level children (root Element plus any Comment/PI siblings) hang off
// of. It is always non-nil and always of kind KindDocument.
func (d *Document) Root() *Node {
	return &d.root
}

// RootElement returns the first Element child of the document, or a
// DOMError if none exists (spec.md's get_root_element).
func (d *Document) RootElement() (*Node, error) {
	for c := d.root.firstChild; c != nil; c = c.next {
		if c.kind == KindElement {
			return c, nil
		}
	}
	return nil, domErrorf("document has no root element")
}

func (d *Document) newNode(kind NodeKind) *Node {
	n := d.nodeArena.alloc()
	*n = Node{kind: kind, doc: d, gen: d.generation}
	return n
}

// CreateElement returns a new, detached Element node named name.
func (d *Document) CreateElement(name []byte) *Node {
	n := d.newNode(KindElement)
	n.name = name
	return n
}

// CreateText returns a new, detached Text node.
func (d *Document) CreateText(value []byte) *Node {
	n := d.newNode(KindText)
	n.value = value
	return n
}

// CreateCDATA returns a new, detached CDATA node.
func (d *Document) CreateCDATA(value []byte) *Node {
	n := d.newNode(KindCDATA)
	n.value = value
	return n
}

// CreateComment returns a new, detached Comment node.
func (d *Document) CreateComment(value []byte) *Node {
	n := d.newNode(KindComment)
	n.value = value
	return n
}

// CreatePI returns a new, detached ProcessingInstruction node.
func (d *Document) CreatePI(target, value []byte) *Node {
	n := d.newNode(KindPI)
	n.name = target
	n.value = value
	return n
}

// CreateAttribute returns a new, detached Attribute.
func (d *Document) CreateAttribute(name, value []byte) *Attribute {
	a := d.attrArena.alloc()
	*a = Attribute{doc: d, gen: d.generation, name: name, value: value}
	return a
}

// Clear resets the document to empty and releases the entire arena in one
// step. Every Node and Attribute handed out before Clear is invalidated;
// using one afterwards panics.
func (d *Document) Clear() {
	d.nodeArena.clear()
	d.attrArena.clear()
	d.generation++
	d.root = Node{kind: KindDocument, doc: d, gen: d.generation}
}
