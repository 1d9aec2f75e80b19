package ixml

// Handler is the push-parser event contract. Every method receives byte
// slices that reference the input buffer Parse was called with — they
// remain valid only as long as that buffer does.
//
// Event ordering, per element: StartElement, zero or more Attribute calls,
// exactly one EndAttributes, then — if the element was not empty — zero or
// more child events followed by EndElement. EndAttributes(true) is emitted
// for self-closing elements and is not followed by EndElement; see
// SPEC_FULL.md's Open Questions decision 2.
//
// StartDocument is emitted exactly once, first; EndDocument exactly once,
// last.
type Handler interface {
	StartDocument() error
	EndDocument() error
	StartElement(name []byte) error
	Attribute(name, value []byte) error
	EndAttributes(empty bool) error
	EndElement(name []byte) error
	Text(value []byte) error
	CDATA(value []byte) error
	Comment(value []byte) error
	ProcessingInstruction(target, value []byte) error
	Doctype() error
}

// NopHandler implements Handler with no-op methods. Embed it in a struct
// and override only the events you care about.
type NopHandler struct{}

func (NopHandler) StartDocument() error                             { return nil }
func (NopHandler) EndDocument() error                                { return nil }
func (NopHandler) StartElement(name []byte) error                    { return nil }
func (NopHandler) Attribute(name, value []byte) error                { return nil }
func (NopHandler) EndAttributes(empty bool) error                    { return nil }
func (NopHandler) EndElement(name []byte) error                      { return nil }
func (NopHandler) Text(value []byte) error                           { return nil }
func (NopHandler) CDATA(value []byte) error                          { return nil }
func (NopHandler) Comment(value []byte) error                        { return nil }
func (NopHandler) ProcessingInstruction(target, value []byte) error  { return nil }
func (NopHandler) Doctype() error                                    { return nil }

var _ Handler = NopHandler{}
