package ixml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDOMRoundTrip is scenario 6: build a document through the DOM APIs,
// serialize it, parse the result back, and compare structure.
func TestDOMRoundTrip(t *testing.T) {
	doc := NewDocument()
	list := doc.CreateElement([]byte("list"))
	doc.Root().AppendChild(list)
	person := doc.CreateElement([]byte("person"))
	person.AppendAttribute(doc.CreateAttribute([]byte("name"), []byte("X")))
	person.AppendAttribute(doc.CreateAttribute([]byte("age"), []byte("1")))
	list.AppendChild(person)

	var buf bytes.Buffer
	require.NoError(t, NewSerializer(NewWriterSink(&buf)).WriteDocument(doc))

	parsed, err := NewDefaultParser().ParseDocument(NewBuffer(buf.Bytes()))
	require.NoError(t, err)

	assertSameStructure(t, doc.Root(), parsed.Root())
}

// TestParseSerializeParseIsStable checks the same invariant for a handful
// of hand-written documents that exercise every node kind, using ASCII
// names and already-escaped values per spec.md §8's round-trip property
// (pre-escaped values sidestep the serializer's no-escaping contract).
func TestParseSerializeParseIsStable(t *testing.T) {
	docs := []string{
		`<r/>`,
		`<r a="1" b="2"/>`,
		`<a><b>text</b><c/></a>`,
		`<r><!--note--><![CDATA[raw]]></r>`,
		`<?xml version="1.0"?><r><?pi x?></r>`,
	}
	for _, src := range docs {
		first, err := NewDefaultParser().ParseDocument(NewBuffer([]byte(src)))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, NewSerializer(NewWriterSink(&buf)).WriteDocument(first))

		second, err := NewDefaultParser().ParseDocument(NewBuffer(buf.Bytes()))
		require.NoError(t, err)

		assertSameStructure(t, first.Root(), second.Root())
	}
}

func assertSameStructure(t *testing.T, a, b *Node) {
	t.Helper()
	for a != nil && b != nil {
		assert.Equal(t, a.Kind(), b.Kind())
		assert.Equal(t, string(a.Name()), string(b.Name()))
		assert.Equal(t, string(a.Value()), string(b.Value()))

		aAttrs, bAttrs := a.Attributes(), b.Attributes()
		require.Len(t, bAttrs, len(aAttrs))
		for i := range aAttrs {
			assert.Equal(t, string(aAttrs[i].Name()), string(bAttrs[i].Name()))
			assert.Equal(t, string(aAttrs[i].Value()), string(bAttrs[i].Value()))
		}

		assertSameStructure(t, a.FirstChild(), b.FirstChild())
		a, b = a.Next(), b.Next()
	}
	assert.Nil(t, a)
	assert.Nil(t, b)
}
