package element

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Syntax is a document encoding.
type Syntax string

const (
	SyntaxJSON Syntax = "json"
	SyntaxYAML Syntax = "yaml"
	SyntaxTOML Syntax = "toml"
	SyntaxXML  Syntax = "xml"
)

// ParseSyntax parses a syntax name. "yml" is accepted for YAML.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return SyntaxJSON, nil
	case "yaml", "yml":
		return SyntaxYAML, nil
	case "toml":
		return SyntaxTOML, nil
	case "xml":
		return SyntaxXML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown document syntax: %s", s).WithDetail("value", s)
	}
}

// SyntaxFromPath picks the syntax from a file extension, defaulting to JSON.
func SyntaxFromPath(path string) Syntax {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if s, err := ParseSyntax(ext); err == nil {
		return s
	}
	return SyntaxJSON
}

// Parse decodes a document and converts it into a node tree.
func Parse(data []byte, syntax Syntax) (types.Node, error) {
	el, err := Decode(data, syntax)
	if err != nil {
		return nil, err
	}
	return ToNode(el)
}

// Decode decodes a document into its root element.
func Decode(data []byte, syntax Syntax) (*Element, error) {
	if syntax == SyntaxXML {
		return decodeXML(data)
	}

	var (
		root any
		err  error
	)
	switch syntax {
	case SyntaxJSON:
		err = json.Unmarshal(data, &root)
	case SyntaxYAML:
		err = yaml.Unmarshal(data, &root)
	case SyntaxTOML:
		var table map[string]any
		err = toml.Unmarshal(data, &table)
		root = table
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown document syntax: %s", syntax)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "failed to parse %s document", syntax).
			WithDetail("syntax", string(syntax))
	}
	return FromValue(root)
}

// FromValue builds an element from generically decoded data: a map with
// "type", optional "props" and optional "children" (a list, or a string for
// text).
func FromValue(v any) (*Element, error) {
	return fromValue(v, "root")
}

func fromValue(v any, path string) (*Element, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, shapeError(path, "an object", v)
	}

	typ, ok := m["type"].(string)
	if !ok {
		return nil, shapeError(path+".type", "a string", m["type"])
	}
	el := &Element{Type: typ}

	switch props := m["props"].(type) {
	case nil:
	case map[string]any:
		el.Props = props
	default:
		return nil, shapeError(path+".props", "an object", props)
	}

	switch children := m["children"].(type) {
	case nil:
	case string:
		el.Children = []any{children}
	case []any:
		for i, c := range children {
			if s, ok := c.(string); ok {
				el.Children = append(el.Children, s)
				continue
			}
			child, err := fromValue(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	default:
		return nil, shapeError(path+".children", "a list or a string", children)
	}
	return el, nil
}

func shapeError(path, want string, got any) error {
	return errors.Newf(errors.ErrDocumentParse, "%s must be %s, got %T", path, want, got).
		WithDetail("path", path)
}

// decodeXML maps tags to types and attributes to props. Character data is
// kept as string children; whitespace-only runs between elements are not.
func decodeXML(data []byte) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse xml document").
			WithDetail("syntax", string(SyntaxXML))
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocumentParse, "xml document has no root element").
			WithDetail("syntax", string(SyntaxXML))
	}
	return fromXML(root), nil
}

func fromXML(x *etree.Element) *Element {
	el := &Element{Type: x.Tag}
	if len(x.Attr) > 0 {
		el.Props = make(map[string]any, len(x.Attr))
		for _, a := range x.Attr {
			el.Props[a.Key] = a.Value
		}
	}
	for _, tok := range x.Child {
		switch t := tok.(type) {
		case *etree.Element:
			el.Children = append(el.Children, fromXML(t))
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				continue
			}
			el.Children = append(el.Children, strings.TrimSpace(t.Data))
		}
	}
	return el
}
