package ixml

import "io"

// Sink is the output contract for Serializer (C4). WriteAll must write
// every byte of p or return an error; it is the only I/O abstraction this
// package defines; everything else about output (files, sockets,
// buffering) is the caller's concern, per spec.md's scope.
type Sink interface {
	WriteAll(p []byte) error
}

// WriterSink adapts a standard io.Writer to Sink.
type WriterSink struct {
	W io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

func (s *WriterSink) WriteAll(p []byte) error {
	_, err := s.W.Write(p)
	return err
}

var _ Sink = (*WriterSink)(nil)
