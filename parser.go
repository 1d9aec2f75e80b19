package ixml

import "bytes"

// Parser is the push parser (C2): a destructive, in-place scanner over a
// caller-owned buffer. It holds no state beyond its configuration flags —
// all per-parse state lives in the scanner a call to Parse creates, so a
// single Parser can be reused across buffers and goroutines are free to
// each hold their own Parser (the scanner itself is not reentrant, per
// spec.md §5).
type Parser struct {
	flags Flag
}

// NewParser returns a Parser configured with flags.
func NewParser(flags Flag) *Parser {
	return &Parser{flags: flags}
}

// NewDefaultParser returns a Parser configured with Default
// (TrimSpace | EntityTranslation), matching the reference parser's
// defaults.
func NewDefaultParser() *Parser {
	return &Parser{flags: Default}
}

// Flags returns the parser's configured flags.
func (p *Parser) Flags() Flag { return p.flags }

// NewBuffer copies src into a new, one-byte-longer buffer terminated with
// a NUL sentinel, ready to pass to Parse. Use this when the caller does
// not already control a null-terminated buffer; Parse requires one per
// spec.md §6.
func NewBuffer(src []byte) []byte {
	buf := make([]byte, len(src)+1)
	copy(buf, src)
	return buf
}

// Parse scans data, which must end in a single NUL sentinel byte that
// Parse will not overwrite as non-zero, and reports structural events to
// handler. data is mutably borrowed for the whole call: decoded runs are
// written back in place, so every slice handler receives aliases data and
// must not be used after data is mutated or freed.
//
// Parse requiring a non-nil, NUL-terminated buffer and a non-nil handler
// are programmer-error preconditions (spec.md §7) and panic rather than
// return an error.
func (p *Parser) Parse(data []byte, handler Handler) error {
	if len(data) == 0 || data[len(data)-1] != 0 {
		panic("ixml: Parse requires a buffer ending in a single NUL sentinel byte")
	}
	if handler == nil {
		panic("ixml: Parse requires a non-nil handler")
	}
	s := &scanner{data: data, flags: p.flags, handler: handler}
	return s.run()
}

// ParseDocument parses data into a freshly created Document using Builder,
// wiring the push parser straight to the arena DOM (C2 -> C3).
func (p *Parser) ParseDocument(data []byte) (*Document, error) {
	doc := NewDocument()
	b := NewBuilder(doc)
	if err := p.Parse(data, b); err != nil {
		return nil, err
	}
	return doc, nil
}

// scanner holds all per-Parse state: the buffer, the read cursor, the
// active flags, and the handler events are reported to. Splitting this
// out of Parser means a Parser value is immutable and safe to share.
type scanner struct {
	data    []byte
	pos     int
	flags   Flag
	handler Handler
}

func (s *scanner) run() error {
	if err := s.handler.StartDocument(); err != nil {
		return err
	}
	s.skipBOM()
	if err := s.maybeParseDeclaration(); err != nil {
		return err
	}
	for {
		s.pos = skip(s.data, s.pos, tableSpace)
		switch c := s.data[s.pos]; {
		case c == 0:
			return s.handler.EndDocument()
		case c != '<':
			return parseErrorf(s.pos, "expected '<' to start a node, found %q", c)
		}
		s.pos++
		switch s.data[s.pos] {
		case 0:
			return parseErrorf(s.pos, "unexpected end of file")
		case '!':
			if err := s.parseTopLevelMarkup(); err != nil {
				return err
			}
		case '?':
			s.pos++
			if err := s.parsePI(); err != nil {
				return err
			}
		default:
			if err := s.parseElement(); err != nil {
				return err
			}
		}
	}
}

func (s *scanner) skipBOM() {
	if bytes.HasPrefix(s.data, []byte{0xEF, 0xBB, 0xBF}) {
		s.pos = 3
	}
}

// maybeParseDeclaration consumes a leading "<?xml version=... ?>" XML
// declaration if present. It emits no handler event — spec.md §4.2's
// top-level scan step 2 is explicit that the declaration is silently
// skipped, confirmed against original_source's parseDocument, which never
// calls a handler method for it.
func (s *scanner) maybeParseDeclaration() error {
	data := s.data
	if !bytes.HasPrefix(data[s.pos:], []byte("<?xml")) {
		return nil
	}
	next := s.pos + 5
	if !tableSpace[data[next]] {
		// "<?xml" not followed by whitespace: not a declaration (could be
		// a PI whose target happens to start with "xml"), leave it for
		// the ordinary PI path.
		return nil
	}
	s.pos = skip(data, next, tableSpace)
	if err := s.expectDeclAttr("version", true); err != nil {
		return err
	}
	s.pos = skip(data, s.pos, tableSpace)
	if bytes.HasPrefix(data[s.pos:], []byte("encoding")) {
		if err := s.expectDeclAttr("encoding", false); err != nil {
			return err
		}
		s.pos = skip(data, s.pos, tableSpace)
	}
	if bytes.HasPrefix(data[s.pos:], []byte("standalone")) {
		if err := s.expectDeclAttr("standalone", false); err != nil {
			return err
		}
		s.pos = skip(data, s.pos, tableSpace)
	}
	if !bytes.HasPrefix(data[s.pos:], []byte("?>")) {
		return parseErrorf(s.pos, "expected '?>' to end XML declaration")
	}
	s.pos += 2
	return nil
}

// expectDeclAttr parses one `name="..."` pseudo-attribute of an XML
// declaration. Its value is not inspected — spec.md is explicit that the
// declaration's contents are never decoded.
func (s *scanner) expectDeclAttr(name string, required bool) error {
	data := s.data
	if !bytes.HasPrefix(data[s.pos:], []byte(name)) {
		if required {
			return parseErrorf(s.pos, "expected %q in XML declaration", name)
		}
		return nil
	}
	s.pos += len(name)
	s.pos = skip(data, s.pos, tableSpace)
	if data[s.pos] != '=' {
		return parseErrorf(s.pos, "expected '=' after %q", name)
	}
	s.pos++
	s.pos = skip(data, s.pos, tableSpace)
	q := data[s.pos]
	if q != '"' && q != '\'' {
		return parseErrorf(s.pos, "expected quoted value for %q", name)
	}
	s.pos++
	idx := bytes.IndexByte(data[s.pos:], q)
	if idx < 0 {
		return parseErrorf(s.pos, "unterminated %q value", name)
	}
	s.pos += idx + 1
	return nil
}

// parseTopLevelMarkup handles "<!..." constructs that may appear outside
// any element: comments, and DOCTYPE. s.pos is positioned at the '!'.
func (s *scanner) parseTopLevelMarkup() error {
	data := s.data
	s.pos++ // consume '!'
	if data[s.pos] == '-' && data[s.pos+1] == '-' {
		s.pos += 2
		value, err := s.scanComment()
		if err != nil {
			return err
		}
		return s.handler.Comment(value)
	}
	if bytes.HasPrefix(data[s.pos:], []byte("DOCTYPE")) {
		// Per SPEC_FULL.md's Open Questions decision 4, DOCTYPE is a hard
		// parse error — the subset is never decoded.
		return parseErrorf(s.pos, "DOCTYPE declarations are not supported")
	}
	return parseErrorf(s.pos, "unrecognized markup declaration")
}

func (s *scanner) parsePI() error {
	data := s.data
	start := s.pos
	s.pos = skip(data, s.pos, tableName)
	if s.pos == start {
		return parseErrorf(start, "expected processing instruction target")
	}
	target := data[start:s.pos]
	s.pos = skip(data, s.pos, tableSpace)
	start = s.pos
	idx := bytes.Index(data[s.pos:], []byte("?>"))
	if idx < 0 {
		return parseErrorf(s.pos, "unterminated processing instruction")
	}
	value := data[start : start+idx]
	s.pos = start + idx + 2
	return s.handler.ProcessingInstruction(target, value)
}

func (s *scanner) scanComment() ([]byte, error) {
	data := s.data
	start := s.pos
	idx := bytes.Index(data[s.pos:], []byte("-->"))
	if idx < 0 {
		return nil, parseErrorf(s.pos, "unterminated comment")
	}
	value := data[start : start+idx]
	s.pos = start + idx + 3
	return value, nil
}

func (s *scanner) scanCDATA() ([]byte, error) {
	data := s.data
	start := s.pos
	idx := bytes.Index(data[s.pos:], []byte("]]>"))
	if idx < 0 {
		return nil, parseErrorf(s.pos, "unterminated CDATA section")
	}
	value := data[start : start+idx]
	s.pos = start + idx + 3
	return value, nil
}

// parseElement parses an element starting right after its opening '<'.
func (s *scanner) parseElement() error {
	data := s.data
	start := s.pos
	s.pos = skip(data, s.pos, tableName)
	if s.pos == start {
		return parseErrorf(start, "expected element name")
	}
	name := data[start:s.pos]
	if err := s.handler.StartElement(name); err != nil {
		return err
	}
	s.pos = skip(data, s.pos, tableSpace)
	for tableAttrName[data[s.pos]] {
		aname, avalue, err := s.parseAttribute()
		if err != nil {
			return err
		}
		if err := s.handler.Attribute(aname, avalue); err != nil {
			return err
		}
		s.pos = skip(data, s.pos, tableSpace)
	}
	var empty bool
	switch data[s.pos] {
	case '>':
		s.pos++
	case '/':
		if data[s.pos+1] != '>' {
			return parseErrorf(s.pos, "expected '>' after '/'")
		}
		s.pos += 2
		empty = true
	default:
		return parseErrorf(s.pos, "expected '>' or '/>' to close start tag")
	}
	if err := s.handler.EndAttributes(empty); err != nil {
		return err
	}
	if empty {
		// Self-closing elements do not get a matching EndElement — see
		// SPEC_FULL.md's Open Questions decision 2.
		return nil
	}
	closeName, err := s.parseContent(name)
	if err != nil {
		return err
	}
	return s.handler.EndElement(closeName)
}

func (s *scanner) parseAttribute() (name, value []byte, err error) {
	data := s.data
	start := s.pos
	s.pos = skip(data, s.pos, tableAttrName)
	if s.pos == start {
		return nil, nil, parseErrorf(start, "expected attribute name")
	}
	name = data[start:s.pos]
	s.pos = skip(data, s.pos, tableSpace)
	if data[s.pos] != '=' {
		return nil, nil, parseErrorf(s.pos, "expected '=' after attribute name %q", name)
	}
	s.pos++
	s.pos = skip(data, s.pos, tableSpace)
	q := data[s.pos]
	if q != '"' && q != '\'' {
		return nil, nil, parseErrorf(s.pos, "expected quote to start attribute value")
	}
	s.pos++
	value, err = s.decodeAttributeValue(q)
	if err != nil {
		return nil, nil, err
	}
	if data[s.pos] != q {
		return nil, nil, parseErrorf(s.pos, "unterminated attribute value")
	}
	s.pos++
	return name, value, nil
}

// parseContent parses everything between an element's opening tag and its
// closing tag, firing Text/CDATA/Comment/PI/nested-element events as it
// goes, and returns the name emitted for the closing tag (see
// parseClosingTag).
func (s *scanner) parseContent(openName []byte) ([]byte, error) {
	data := s.data
	for {
		if s.flags.Has(TrimSpace) {
			s.pos = skip(data, s.pos, tableSpace)
		}
		if data[s.pos] != '<' {
			value, err := s.scanText()
			if err != nil {
				return nil, err
			}
			if err := s.handler.Text(value); err != nil {
				return nil, err
			}
			if data[s.pos] == 0 {
				return nil, parseErrorf(s.pos, "unexpected end of file inside element <%s>", openName)
			}
			continue
		}
		s.pos++ // consume '<'
		switch data[s.pos] {
		case 0:
			return nil, parseErrorf(s.pos, "unexpected end of file")
		case '/':
			s.pos++
			return s.parseClosingTag(openName)
		case '!':
			if err := s.parseContentMarkup(); err != nil {
				return nil, err
			}
		case '?':
			s.pos++
			if err := s.parsePI(); err != nil {
				return nil, err
			}
		default:
			if err := s.parseElement(); err != nil {
				return nil, err
			}
		}
	}
}

// parseContentMarkup handles "<!..." constructs inside element content:
// comments and CDATA sections. s.pos is positioned at the '!'.
func (s *scanner) parseContentMarkup() error {
	data := s.data
	s.pos++ // consume '!'
	if data[s.pos] == '-' && data[s.pos+1] == '-' {
		s.pos += 2
		value, err := s.scanComment()
		if err != nil {
			return err
		}
		return s.handler.Comment(value)
	}
	if bytes.HasPrefix(data[s.pos:], []byte("[CDATA[")) {
		s.pos += len("[CDATA[")
		value, err := s.scanCDATA()
		if err != nil {
			return err
		}
		return s.handler.CDATA(value)
	}
	return parseErrorf(s.pos, "unrecognized markup declaration")
}

// parseClosingTag parses a "</name>" that closes openName, returning the
// name to report to Handler.EndElement. With ClosingTagValidate, any
// well-formed name is accepted and returned as read; otherwise the
// closing name must match openName byte-for-byte.
func (s *scanner) parseClosingTag(openName []byte) ([]byte, error) {
	data := s.data
	if s.flags.Has(ClosingTagValidate) {
		start := s.pos
		s.pos = skip(data, s.pos, tableName)
		if s.pos == start {
			return nil, parseErrorf(start, "expected closing tag name")
		}
		closeName := data[start:s.pos]
		s.pos = skip(data, s.pos, tableSpace)
		if data[s.pos] != '>' {
			return nil, parseErrorf(s.pos, "expected '>' to close tag")
		}
		s.pos++
		return closeName, nil
	}
	n := len(openName)
	if s.pos+n > len(data) || !bytes.Equal(data[s.pos:s.pos+n], openName) {
		return nil, parseErrorf(s.pos, "mismatched closing tag: expected </%s>", openName)
	}
	closeName := data[s.pos : s.pos+n]
	s.pos += n
	s.pos = skip(data, s.pos, tableSpace)
	if data[s.pos] != '>' {
		return nil, parseErrorf(s.pos, "expected '>' to close tag")
	}
	s.pos++
	return closeName, nil
}

// scanText scans a text run starting at s.pos (not '<'), decoding
// entities and applying the TrimSpace/NormalizeSpace whitespace policy in
// a single in-place pass: a read cursor p and a write cursor q start
// together and only diverge once the first entity is decoded or (with
// NormalizeSpace) the first whitespace run is collapsed, at which point
// every later byte is copied back by (p - q) — spec.md's "in-place
// decoding never extends a run" invariant falls directly out of q never
// running ahead of p.
func (s *scanner) scanText() ([]byte, error) {
	data := s.data
	start := s.pos
	p, q := start, start
	entityTranslation := s.flags.Has(EntityTranslation)
	normalize := s.flags.Has(NormalizeSpace)
	for tableText[data[p]] {
		c := data[p]
		switch {
		case c == '&' && entityTranslation:
			b, newP, err := s.decodeEntityAt(p)
			if err != nil {
				return nil, err
			}
			data[q] = b
			q++
			p = newP
		case normalize && tableSpace[c]:
			data[q] = ' '
			q++
			p++
			for tableSpace[data[p]] {
				p++
			}
		default:
			if q != p {
				data[q] = c
			}
			q++
			p++
		}
	}
	s.pos = p
	end := q
	if s.flags.Has(TrimSpace) {
		for end > start && tableSpace[data[end-1]] {
			end--
		}
	}
	return data[start:end], nil
}

// decodeAttributeValue scans an attribute value up to (but not including)
// the closing quote, decoding entities in place the same way scanText
// does. There is no whitespace normalization for attribute values —
// spec.md's whitespace policy applies to text runs only.
func (s *scanner) decodeAttributeValue(quote byte) ([]byte, error) {
	data := s.data
	stopPred := tableAttrVal1
	if quote == '\'' {
		stopPred = tableAttrVal2
	}
	start := s.pos
	p, q := start, start
	entityTranslation := s.flags.Has(EntityTranslation)
	for stopPred[data[p]] {
		c := data[p]
		if c == '&' && entityTranslation {
			b, newP, err := s.decodeEntityAt(p)
			if err != nil {
				return nil, err
			}
			data[q] = b
			q++
			p = newP
			continue
		}
		if q != p {
			data[q] = c
		}
		q++
		p++
	}
	s.pos = p
	return data[start:q], nil
}

// decodeEntityAt decodes the entity reference starting at data[pos] (the
// '&') and returns the single decoded byte, the position just past the
// terminating ';', and any error. Every entity this parser supports
// decodes to exactly one byte: the five predefined entities are each one
// ASCII character, and numeric character references are truncated to
// their low 8 bits rather than re-encoded to UTF-8 — a known, documented
// limitation, see SPEC_FULL.md's Open Questions decision 1.
func (s *scanner) decodeEntityAt(pos int) (byte, int, error) {
	data := s.data
	start := pos
	p := pos + 1 // skip '&'
	if data[p] == '#' {
		p++
		var val uint32
		if data[p] == 'x' || data[p] == 'X' {
			p++
			digitStart := p
			for {
				h := hexValue(data[p])
				if h == 255 {
					break
				}
				val = val*16 + uint32(h)
				p++
			}
			if p == digitStart {
				return 0, 0, parseErrorf(start, "malformed hexadecimal character reference")
			}
		} else {
			digitStart := p
			for {
				d := decimalValue(data[p])
				if d == 255 {
					break
				}
				val = val*10 + uint32(d)
				p++
			}
			if p == digitStart {
				return 0, 0, parseErrorf(start, "malformed decimal character reference")
			}
		}
		if data[p] != ';' {
			return 0, 0, parseErrorf(start, "expected ';' to terminate character reference")
		}
		return byte(val), p + 1, nil
	}
	switch {
	case bytes.HasPrefix(data[p:], []byte("amp;")):
		return '&', p + 4, nil
	case bytes.HasPrefix(data[p:], []byte("apos;")):
		return '\'', p + 5, nil
	case bytes.HasPrefix(data[p:], []byte("gt;")):
		return '>', p + 3, nil
	case bytes.HasPrefix(data[p:], []byte("lt;")):
		return '<', p + 3, nil
	case bytes.HasPrefix(data[p:], []byte("quot;")):
		return '"', p + 5, nil
	default:
		return 0, 0, parseErrorf(start, "unknown entity reference")
	}
}
