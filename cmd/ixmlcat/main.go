// Command ixmlcat reads an XML file and either re-serializes it or prints
// the stream of parser events, demonstrating the ixml library end to end.
// It mirrors the reference C++ source's example/XML/{DOMReader,SAXReader}
// programs (see SPEC_FULL.md §6) and is not itself part of the library's
// tested surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wiredwood/ixml"
)

func main() {
	fs := flag.NewFlagSet("ixmlcat", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "indent nested elements when re-serializing")
	sax := fs.Bool("sax", false, "dump raw parser events instead of building a DOM")
	validateClosing := fs.Bool("validate-closing-tags", false, "accept any well-formed closing tag name instead of requiring an exact match")
	noEntities := fs.Bool("no-entities", false, "disable entity decoding")
	normalize := fs.Bool("normalize-space", false, "collapse internal whitespace runs in text to a single space")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ixmlcat [flags] <file.xml>")
		fs.PrintDefaults()
		os.Exit(2)
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatalf("ixmlcat: %v", err)
	}
	buf := ixml.NewBuffer(raw)

	flags := ixml.TrimSpace
	if !*noEntities {
		flags |= ixml.EntityTranslation
	}
	if *normalize {
		flags |= ixml.NormalizeSpace
	}
	if *validateClosing {
		flags |= ixml.ClosingTagValidate
	}
	parser := ixml.NewParser(flags)

	if *sax {
		if err := parser.Parse(buf, newSAXLogger()); err != nil {
			log.Fatalf("ixmlcat: %v", err)
		}
		return
	}

	doc, err := parser.ParseDocument(buf)
	if err != nil {
		log.Fatalf("ixmlcat: %v", err)
	}

	out := ixml.NewWriterSink(os.Stdout)
	if *pretty {
		p := &prettyPrinter{out: os.Stdout}
		if err := p.print(doc); err != nil {
			log.Fatalf("ixmlcat: %v", err)
		}
		fmt.Println()
		return
	}
	s := ixml.NewSerializer(out)
	if err := s.WriteDocument(doc); err != nil {
		log.Fatalf("ixmlcat: %v", err)
	}
	fmt.Println()
}

// saxLogger is a Handler that logs element, attribute, text, CDATA,
// comment and processing-instruction events with depth-based indentation,
// the Go equivalent of the reference source's example/XML/SAXReader.cpp.
// Document start/end and non-empty EndAttributes events are not logged.
type saxLogger struct {
	ixml.NopHandler
	depth int
}

func newSAXLogger() *saxLogger { return &saxLogger{} }

func (h *saxLogger) indent() string {
	return fmt.Sprintf("%*s", h.depth*2, "")
}

func (h *saxLogger) StartElement(name []byte) error {
	log.Printf("%sstart_element %s", h.indent(), name)
	h.depth++
	return nil
}

func (h *saxLogger) Attribute(name, value []byte) error {
	log.Printf("%s  attribute %s=%q", h.indent(), name, value)
	return nil
}

func (h *saxLogger) EndAttributes(empty bool) error {
	if empty {
		h.depth--
		log.Printf("%send_attributes(empty)", h.indent())
	}
	return nil
}

func (h *saxLogger) EndElement(name []byte) error {
	h.depth--
	log.Printf("%send_element %s", h.indent(), name)
	return nil
}

func (h *saxLogger) Text(value []byte) error {
	log.Printf("%stext %q", h.indent(), value)
	return nil
}

func (h *saxLogger) CDATA(value []byte) error {
	log.Printf("%scdata %q", h.indent(), value)
	return nil
}

func (h *saxLogger) Comment(value []byte) error {
	log.Printf("%scomment %q", h.indent(), value)
	return nil
}

func (h *saxLogger) ProcessingInstruction(target, value []byte) error {
	log.Printf("%sprocessing_instruction %s %q", h.indent(), target, value)
	return nil
}

// prettyPrinter walks a Document and writes indented, one-construct-per-line
// XML, grounded on the teacher's printer.go (PrintXMLPretty).
type prettyPrinter struct {
	out interface{ Write([]byte) (int, error) }
}

func (p *prettyPrinter) print(doc *ixml.Document) error {
	return p.printSiblings(doc.Root().FirstChild(), 0)
}

func (p *prettyPrinter) printSiblings(n *ixml.Node, depth int) error {
	for c := n; c != nil; c = c.Next() {
		if err := p.printNode(c, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *prettyPrinter) printNode(n *ixml.Node, depth int) error {
	pad := fmt.Sprintf("%*s", depth*2, "")
	switch n.Kind() {
	case ixml.KindElement:
		fmt.Fprintf(p.out, "%s<%s", pad, n.Name())
		for a := n.FirstAttribute(); a != nil; a = a.Next() {
			fmt.Fprintf(p.out, ` %s="%s"`, a.Name(), a.Value())
		}
		if n.FirstChild() == nil {
			fmt.Fprintf(p.out, "/>\n")
			return nil
		}
		fmt.Fprintf(p.out, ">\n")
		if err := p.printSiblings(n.FirstChild(), depth+1); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "%s</%s>\n", pad, n.Name())
	case ixml.KindText:
		fmt.Fprintf(p.out, "%s%s\n", pad, n.Value())
	case ixml.KindCDATA:
		fmt.Fprintf(p.out, "%s<![CDATA[%s]]>\n", pad, n.Value())
	case ixml.KindComment:
		fmt.Fprintf(p.out, "%s<!--%s-->\n", pad, n.Value())
	case ixml.KindPI:
		fmt.Fprintf(p.out, "%s<?%s %s?>\n", pad, n.Name(), n.Value())
	default:
		return fmt.Errorf("ixmlcat: unexpected node kind %v", n.Kind())
	}
	return nil
}
