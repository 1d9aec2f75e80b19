package ixml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerEmitsHandlerEventsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(NewWriterSink(&buf))

	require.NoError(t, s.StartDocument())
	require.NoError(t, s.StartElement([]byte("r")))
	require.NoError(t, s.Attribute([]byte("a"), []byte("1")))
	require.NoError(t, s.EndAttributes(false))
	require.NoError(t, s.Text([]byte("hi")))
	require.NoError(t, s.Comment([]byte("note")))
	require.NoError(t, s.CDATA([]byte("<raw>")))
	require.NoError(t, s.ProcessingInstruction([]byte("pi"), []byte("x")))
	require.NoError(t, s.EndElement([]byte("r")))
	require.NoError(t, s.EndDocument())

	want := `<r a="1">hi<!--note--><![CDATA[<raw>]]><?pi x?></r>`
	assert.Equal(t, want, buf.String())
}

func TestSerializerEmptyElement(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(NewWriterSink(&buf))

	require.NoError(t, s.StartElement([]byte("r")))
	require.NoError(t, s.EndAttributes(true))

	assert.Equal(t, `<r/>`, buf.String())
}

func TestSerializerStopsWritingAfterFirstError(t *testing.T) {
	sink := &failingSink{failAfter: 2}
	s := NewSerializer(sink)

	require.NoError(t, s.StartElement([]byte("r")))
	err := s.EndAttributes(true)
	require.Error(t, err)
	assert.Equal(t, err, s.Err())

	// A further call must not perform any additional writes.
	writesBefore := sink.writes
	_ = s.EndElement([]byte("r"))
	assert.Equal(t, writesBefore, sink.writes)
}

func TestWriteDocumentWalksTreeInOrder(t *testing.T) {
	doc := NewDocument()
	list := doc.CreateElement([]byte("list"))
	doc.Root().AppendChild(list)
	person := doc.CreateElement([]byte("person"))
	person.AppendAttribute(doc.CreateAttribute([]byte("name"), []byte("X")))
	person.AppendAttribute(doc.CreateAttribute([]byte("age"), []byte("1")))
	list.AppendChild(person)

	var buf bytes.Buffer
	s := NewSerializer(NewWriterSink(&buf))
	require.NoError(t, s.WriteDocument(doc))

	assert.Equal(t, `<list><person name="X" age="1"/></list>`, buf.String())
}

// failingSink fails its (failAfter+1)th write, to test that Serializer
// short-circuits once it has recorded an error.
type failingSink struct {
	writes    int
	failAfter int
}

func (f *failingSink) WriteAll(p []byte) error {
	f.writes++
	if f.writes > f.failAfter {
		return assert.AnError
	}
	return nil
}
