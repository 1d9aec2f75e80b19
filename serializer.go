package ixml

// Serializer is the event serializer (C4). It implements Handler, so it
// can be driven directly by Parser's push events (SAX passthrough, no DOM
// built at all) or by WriteDocument, which walks a Document and drives
// the same methods. No escaping is applied to any value: callers are
// responsible for providing content that is already XML-safe. That's a
// deliberate performance decision carried over from spec.md's emission
// rules, not an oversight.
type Serializer struct {
	sink Sink
	err  error
}

// NewSerializer returns a Serializer writing to sink.
func NewSerializer(sink Sink) *Serializer {
	return &Serializer{sink: sink}
}

var _ Handler = (*Serializer)(nil)

// Err returns the first write error encountered, if any. Once set, every
// subsequent Handler method that writes bytes becomes a no-op that returns
// the same error; StartDocument, EndDocument and Doctype write nothing and
// always return nil.
func (s *Serializer) Err() error { return s.err }

func (s *Serializer) write(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if err := s.sink.WriteAll(p); err != nil {
		s.err = err
	}
	return s.err
}

func (s *Serializer) writeStr(str string) error {
	return s.write([]byte(str))
}

func (s *Serializer) StartDocument() error { return nil }
func (s *Serializer) EndDocument() error   { return nil }

func (s *Serializer) StartElement(name []byte) error {
	if err := s.writeStr("<"); err != nil {
		return err
	}
	return s.write(name)
}

func (s *Serializer) Attribute(name, value []byte) error {
	if err := s.writeStr(" "); err != nil {
		return err
	}
	if err := s.write(name); err != nil {
		return err
	}
	if err := s.writeStr(`="`); err != nil {
		return err
	}
	if err := s.write(value); err != nil {
		return err
	}
	return s.writeStr(`"`)
}

func (s *Serializer) EndAttributes(empty bool) error {
	if empty {
		return s.writeStr("/>")
	}
	return s.writeStr(">")
}

func (s *Serializer) EndElement(name []byte) error {
	if err := s.writeStr("</"); err != nil {
		return err
	}
	if err := s.write(name); err != nil {
		return err
	}
	return s.writeStr(">")
}

func (s *Serializer) Text(value []byte) error {
	return s.write(value)
}

func (s *Serializer) CDATA(value []byte) error {
	if err := s.writeStr("<![CDATA["); err != nil {
		return err
	}
	if err := s.write(value); err != nil {
		return err
	}
	return s.writeStr("]]>")
}

func (s *Serializer) Comment(value []byte) error {
	if err := s.writeStr("<!--"); err != nil {
		return err
	}
	if err := s.write(value); err != nil {
		return err
	}
	return s.writeStr("-->")
}

func (s *Serializer) ProcessingInstruction(target, value []byte) error {
	if err := s.writeStr("<?"); err != nil {
		return err
	}
	if err := s.write(target); err != nil {
		return err
	}
	if err := s.writeStr(" "); err != nil {
		return err
	}
	if err := s.write(value); err != nil {
		return err
	}
	return s.writeStr("?>")
}

// Doctype corresponds to a handler notification the reference never
// decodes (spec.md §1); there is no DOM node kind for it (SPEC_FULL.md),
// so there is nothing to emit.
func (s *Serializer) Doctype() error { return nil }

// WriteDocument serializes doc to the Serializer's sink in document order,
// walking parent/next pointers rather than recursing — the non-recursive
// walk spec.md §4.3 describes, ported from original_source's
// XMLDocument::serialize.
func (s *Serializer) WriteDocument(doc *Document) error {
	if err := s.StartDocument(); err != nil {
		return err
	}
	root := doc.Root()
	if cur := root.FirstChild(); cur != nil {
		for {
			switch cur.Kind() {
			case KindElement:
				if err := s.StartElement(cur.Name()); err != nil {
					return err
				}
				for a := cur.FirstAttribute(); a != nil; a = a.Next() {
					if err := s.Attribute(a.Name(), a.Value()); err != nil {
						return err
					}
				}
				empty := cur.FirstChild() == nil
				if err := s.EndAttributes(empty); err != nil {
					return err
				}
				if !empty {
					cur = cur.FirstChild()
					continue
				}
			case KindText:
				if err := s.Text(cur.Value()); err != nil {
					return err
				}
			case KindCDATA:
				if err := s.CDATA(cur.Value()); err != nil {
					return err
				}
			case KindComment:
				if err := s.Comment(cur.Value()); err != nil {
					return err
				}
			case KindPI:
				if err := s.ProcessingInstruction(cur.Name(), cur.Value()); err != nil {
					return err
				}
			default:
				return domErrorf("invalid node kind %v in tree", cur.Kind())
			}
			for cur.Next() == nil {
				cur = cur.Parent()
				if cur == root {
					break
				}
				if err := s.EndElement(cur.Name()); err != nil {
					return err
				}
			}
			if cur == root {
				break
			}
			cur = cur.Next()
		}
	}
	return s.EndDocument()
}
