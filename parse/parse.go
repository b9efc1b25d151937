package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/structdiff/xmldiff/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{trim: true}
	for _, f := range opts {
		f(pOpts)
	}
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true

	var root *ir.Node
	var stack []*ir.Node
	var text strings.Builder
	// adjacent character data chunks (text around CDATA sections or
	// comments) merge into one node before the trim policy applies
	flushText := func() {
		if text.Len() == 0 {
			return
		}
		v := text.String()
		text.Reset()
		if pOpts.trim {
			v = strings.TrimSpace(v)
			if v == "" {
				return
			}
		}
		stack[len(stack)-1].Append(ir.Text(v))
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			flushText()
			el := ir.Element(t.Name.Local)
			for _, a := range t.Attr {
				if xmlns(a.Name) {
					continue
				}
				el.SetAttr(ir.Attr(a.Name.Local, a.Value))
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			flushText()
			// the decoder has already verified nesting
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: character data outside root element", ErrParse)
				}
				continue
			}
			text.Write(t)

		case xml.Comment, xml.ProcInst, xml.Directive:
			// not structural
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return &ir.Document{Root: root, Label: pOpts.label}, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

func xmlns(n xml.Name) bool {
	return n.Space == "xmlns" || n.Local == "xmlns"
}
