package ixml

// Builder is the DOM-construction Handler (C3's builder from spec.md
// §4.3): it materializes a Document from parser events. current tracks
// where new nodes attach; StartElement descends into the new element,
// EndAttributes(true) and EndElement ascend back to the parent.
//
// Per SPEC_FULL.md's Open Questions decision 2, EndAttributes(true)
// already closes the element (no following EndElement for self-closing
// tags), so Builder pops the stack there and does not expect a matching
// EndElement call.
type Builder struct {
	Doc     *Document
	current *Node
}

// NewBuilder returns a Builder that populates doc.
func NewBuilder(doc *Document) *Builder {
	return &Builder{Doc: doc, current: doc.Root()}
}

var _ Handler = (*Builder)(nil)

func (b *Builder) StartDocument() error {
	b.current = b.Doc.Root()
	return nil
}

func (b *Builder) EndDocument() error {
	return nil
}

func (b *Builder) StartElement(name []byte) error {
	el := b.Doc.CreateElement(name)
	b.current.AppendChild(el)
	b.current = el
	return nil
}

func (b *Builder) Attribute(name, value []byte) error {
	a := b.Doc.CreateAttribute(name, value)
	b.current.AppendAttribute(a)
	return nil
}

func (b *Builder) EndAttributes(empty bool) error {
	if empty {
		b.current = b.current.Parent()
	}
	return nil
}

func (b *Builder) EndElement(name []byte) error {
	b.current = b.current.Parent()
	return nil
}

func (b *Builder) Text(value []byte) error {
	b.current.AppendChild(b.Doc.CreateText(value))
	return nil
}

func (b *Builder) CDATA(value []byte) error {
	b.current.AppendChild(b.Doc.CreateCDATA(value))
	return nil
}

func (b *Builder) Comment(value []byte) error {
	b.current.AppendChild(b.Doc.CreateComment(value))
	return nil
}

func (b *Builder) ProcessingInstruction(target, value []byte) error {
	b.current.AppendChild(b.Doc.CreatePI(target, value))
	return nil
}

func (b *Builder) Doctype() error {
	return nil
}
