// Package json serializes laid-out trees as {type, props, children} records.
//
// Props carry only the attributes a node declares, named as in the host
// element API (borderStyle, flexDirection, paddingX, bold, ...). Children is
// a list of records for a Box and the literal content for a Text. The output
// parses back with Decode.
package json

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/arthur-debert/boxtext/pkg/element"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/types"
	"gopkg.in/yaml.v3"
)

// Encoding selects the serialization.
type Encoding int

const (
	// EncodingJSON writes two-space indented JSON.
	EncodingJSON Encoding = iota
	// EncodingYAML writes YAML.
	EncodingYAML
)

// String returns the encoding name.
func (e Encoding) String() string {
	if e == EncodingYAML {
		return "yaml"
	}
	return "json"
}

// Syntax returns the element document syntax that reads this encoding.
func (e Encoding) Syntax() element.Syntax {
	if e == EncodingYAML {
		return element.SyntaxYAML
	}
	return element.SyntaxJSON
}

// Record is one serialized node.
type Record struct {
	Type     string         `json:"type" yaml:"type"`
	Props    map[string]any `json:"props" yaml:"props"`
	Children any            `json:"children" yaml:"children"`
}

// Renderer provides structured output for machine consumption
type Renderer struct {
	encoding Encoding
}

// New creates a structured renderer
func New(enc Encoding) *Renderer {
	return &Renderer{encoding: enc}
}

// Chrome implements ui.Strategy. Structured output is not drawn, so the
// layout pass adds nothing.
func (r *Renderer) Chrome() layout.Chrome {
	return layout.BareChrome{}
}

// Render implements ui.Strategy.
func (r *Renderer) Render(b *layout.Block) (string, error) {
	rec, err := recordOf(b.Node)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	switch r.encoding {
	case EncodingYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(rec); err == nil {
			err = enc.Close()
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(rec)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncode, "failed to encode %s", r.encoding)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Decode parses structured output back into a node tree.
func Decode(data []byte, enc Encoding) (types.Node, error) {
	return element.Parse(data, enc.Syntax())
}

func recordOf(node types.Node) (Record, error) {
	switch n := node.(type) {
	case *types.Box:
		if n == nil {
			break
		}
		rec := Record{Type: string(types.KindBox), Props: boxProps(n)}
		children := make([]Record, 0, len(n.Children))
		for _, c := range n.Children {
			cr, err := recordOf(c)
			if err != nil {
				return Record{}, err
			}
			children = append(children, cr)
		}
		rec.Children = children
		return rec, nil
	case *types.Text:
		if n == nil {
			break
		}
		return Record{Type: string(types.KindText), Props: textProps(n.Style), Children: n.Content}, nil
	}
	return Record{}, errors.Newf(errors.ErrUnsupportedNode, "cannot serialize %T", node)
}

func boxProps(b *types.Box) map[string]any {
	props := map[string]any{}
	if b.Border != types.BorderDefault {
		props["borderStyle"] = string(b.Border)
	}
	if b.BorderColor != types.ColorDefault {
		props["borderColor"] = string(b.BorderColor)
	}
	if b.Direction != types.DirectionDefault {
		props["flexDirection"] = string(b.Direction)
	}
	for _, f := range b.Padding.Fields("padding") {
		props[f.Name] = f.Value
	}
	for _, f := range b.Margin.Fields("margin") {
		props[f.Name] = f.Value
	}
	return props
}

func textProps(st types.TextStyle) map[string]any {
	props := map[string]any{}
	if st.Color != types.ColorDefault {
		props["color"] = string(st.Color)
	}
	if st.Bold {
		props["bold"] = true
	}
	if st.Italic {
		props["italic"] = true
	}
	if st.Underline {
		props["underline"] = true
	}
	return props
}
