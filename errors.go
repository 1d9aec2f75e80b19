package ixml

import "fmt"

// ParseError is raised by the push parser (C2). It carries a
// human-readable message and the byte offset (cursor minus buffer start)
// at which parsing failed. State after a ParseError is undefined: the
// handler may have received a prefix of events but will not receive
// EndDocument.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ixml: %s (at offset %d)", e.Msg, e.Offset)
}

func parseErrorf(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// DOMError is raised by the arena DOM (C3) for invalid operations, such as
// Document.RootElement with no element child, or the serializer
// encountering a node kind it does not understand.
type DOMError struct {
	Msg string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("ixml: %s", e.Msg)
}

func domErrorf(format string, args ...interface{}) *DOMError {
	return &DOMError{Msg: fmt.Sprintf(format, args...)}
}
