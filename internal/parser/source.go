package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// Event is the kind of token a TokenSource advanced to.
type Event int

const (
	StartElement Event = iota + 1
	EndElement
	Text
)

func (e Event) String() string {
	switch e {
	case StartElement:
		return "StartElement"
	case EndElement:
		return "EndElement"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// TokenSource is a forward-only XML event cursor.
//
// The parser pulls one event at a time and never looks ahead; the
// nesting of open elements is mirrored by its own call stack.
type TokenSource interface {
	// Next advances to the next event. It returns io.EOF after the
	// last event of the document.
	Next() (Event, error)

	// Name returns the namespace URI and local name of the current
	// start or end element.
	Name() xml.Name

	// Attr returns an attribute of the current start element.
	Attr(space, local string) (string, bool)

	// ElementText returns the text content of the current start
	// element and consumes everything through its end tag.
	ElementText() (string, error)
}

// XMLSource is a TokenSource reading an XML document with
// encoding/xml. Names carry resolved namespace URIs.
type XMLSource struct {
	dec   *xml.Decoder
	name  xml.Name
	attrs []xml.Attr
	depth int
}

// NewXMLSource returns a source reading XML from r.
func NewXMLSource(r io.Reader) *XMLSource {
	return &XMLSource{dec: xml.NewDecoder(r)}
}

// Next implements TokenSource. Comments, processing instructions and
// directives are skipped.
func (s *XMLSource) Next() (Event, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return 0, truncated(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			s.name, s.attrs = t.Name, t.Attr
			s.depth++
			return StartElement, nil
		case xml.EndElement:
			s.name, s.attrs = t.Name, nil
			s.depth--
			return EndElement, nil
		case xml.CharData:
			return Text, nil
		}
	}
}

// Name implements TokenSource.
func (s *XMLSource) Name() xml.Name { return s.name }

// Attr implements TokenSource.
func (s *XMLSource) Attr(space, local string) (string, bool) {
	for _, a := range s.attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// ElementText implements TokenSource. A child element inside the text
// is reported as an unsupported element.
func (s *XMLSource) ElementText() (string, error) {
	start := s.name
	var text strings.Builder
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return "", fmt.Errorf("text of %s not closed: %w", start.Local, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return "", truncated(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			s.name, s.attrs = t.Name, t.Attr
			s.depth++
			return "", geometry.Errorf(geometry.KindUnsupportedElement, t.Name.Space, t.Name.Local,
				"element inside text of %s", start.Local)
		case xml.EndElement:
			s.name, s.attrs = t.Name, nil
			s.depth--
			return text.String(), nil
		}
	}
}

// Depth returns the number of elements currently open.
func (s *XMLSource) Depth() int { return s.depth }

// Skip consumes events until the element open at depth is closed.
func (s *XMLSource) Skip(depth int) error {
	for s.depth >= depth {
		if _, err := s.Next(); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// truncated reports the decoder's "unexpected EOF" syntax error, raised
// when the document ends with elements still open, as
// io.ErrUnexpectedEOF.
func truncated(err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) && serr.Msg == "unexpected EOF" {
		return fmt.Errorf("line %d: %w", serr.Line, io.ErrUnexpectedEOF)
	}
	return err
}
