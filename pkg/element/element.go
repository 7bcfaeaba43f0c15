// Package element converts host UI elements into render nodes.
//
// An Element mirrors a framework element: a type name, a props map and
// children that are either elements or strings. Documents in JSON, YAML,
// TOML or XML describe the same shape:
//
//	{"type": "Box", "props": {"borderStyle": "double"},
//	 "children": [{"type": "Text", "props": {"bold": true}, "children": "Hi"}]}
//
//	<Box borderStyle="double"><Text bold="true">Hi</Text></Box>
//
// Prop names are those of the structured output format, so structured
// output parses back into the tree it came from.
package element

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Element is a host UI element. Children holds *Element, Element or string
// values.
type Element struct {
	Type     string
	Props    map[string]any
	Children []any
}

// New creates an element.
func New(typ string, props map[string]any, children ...any) *Element {
	return &Element{Type: typ, Props: props, Children: children}
}

// ToNode converts el and its descendants into a node tree.
func ToNode(el *Element) (types.Node, error) {
	return convert(el, layout.RootPath)
}

func convert(el *Element, path string) (types.Node, error) {
	if el == nil {
		return nil, errors.Newf(errors.ErrUnsupportedNode, "%s: nil element", path).WithDetail("path", path)
	}
	switch strings.ToLower(el.Type) {
	case "box":
		return convertBox(el, path)
	case "text":
		return convertText(el, path)
	default:
		return nil, errors.Newf(errors.ErrUnsupportedNode, "%s: unsupported element type %q", path, el.Type).
			WithDetail("path", path).
			WithDetail("type", el.Type)
	}
}

func convertBox(el *Element, path string) (*types.Box, error) {
	p := props{values: el.Props, path: path}
	box := &types.Box{
		Border:      types.BorderStyle(p.str("borderStyle")),
		BorderColor: types.Color(p.str("borderColor")),
		Direction:   types.Direction(p.str("flexDirection", "direction")),
		Padding:     p.spacing("padding"),
		Margin:      p.spacing("margin"),
	}
	if p.err != nil {
		return nil, p.err
	}

	for i, child := range el.Children {
		childPath := layout.ChildPath(path, i)
		switch c := child.(type) {
		case string:
			box.Children = append(box.Children, types.NewText(c))
		case *Element:
			n, err := convert(c, childPath)
			if err != nil {
				return nil, err
			}
			box.Children = append(box.Children, n)
		case Element:
			n, err := convert(&c, childPath)
			if err != nil {
				return nil, err
			}
			box.Children = append(box.Children, n)
		default:
			return nil, errors.Newf(errors.ErrUnsupportedNode, "%s: unsupported child %T", childPath, child).
				WithDetail("path", childPath).
				WithDetail("type", fmt.Sprintf("%T", child))
		}
	}
	return box, nil
}

func convertText(el *Element, path string) (*types.Text, error) {
	p := props{values: el.Props, path: path}
	t := &types.Text{
		Style: types.TextStyle{
			Color:     types.Color(p.str("color")),
			Bold:      p.flag("bold"),
			Italic:    p.flag("italic"),
			Underline: p.flag("underline"),
		},
	}
	if p.err != nil {
		return nil, p.err
	}

	var sb strings.Builder
	if err := collectText(&sb, el.Children, path); err != nil {
		return nil, err
	}
	t.Content = sb.String()
	return t, nil
}

// collectText concatenates string children, descending into nested text
// elements. Nested styling is not kept.
func collectText(sb *strings.Builder, children []any, path string) error {
	for i, child := range children {
		switch c := child.(type) {
		case string:
			sb.WriteString(c)
		case *Element:
			if c == nil || !strings.EqualFold(c.Type, "text") {
				return nested(layout.ChildPath(path, i), c)
			}
			if err := collectText(sb, c.Children, layout.ChildPath(path, i)); err != nil {
				return err
			}
		case Element:
			if !strings.EqualFold(c.Type, "text") {
				return nested(layout.ChildPath(path, i), &c)
			}
			if err := collectText(sb, c.Children, layout.ChildPath(path, i)); err != nil {
				return err
			}
		default:
			return errors.Newf(errors.ErrInvalidInput, "%s: text children must be strings, got %T", path, child).
				WithDetail("path", layout.ChildPath(path, i))
		}
	}
	return nil
}

func nested(path string, el *Element) error {
	typ := "<nil>"
	if el != nil {
		typ = el.Type
	}
	return errors.Newf(errors.ErrUnsupportedNode, "%s: %s cannot be nested in Text", path, typ).
		WithDetail("path", path).
		WithDetail("type", typ)
}

// props reads typed values out of a props map, remembering the first
// malformed value.
type props struct {
	values map[string]any
	path   string
	err    error
}

func (p *props) lookup(names ...string) (string, any, bool) {
	for _, n := range names {
		if v, ok := p.values[n]; ok && v != nil {
			return n, v, true
		}
	}
	return "", nil, false
}

func (p *props) fail(name string, v any, want string) {
	if p.err != nil {
		return
	}
	p.err = errors.Newf(errors.ErrInvalidInput, "%s: prop %s must be %s, got %v", p.path, name, want, v).
		WithDetail("path", p.path).
		WithDetail("field", name).
		WithDetail("value", v)
}

func (p *props) str(names ...string) string {
	name, v, ok := p.lookup(names...)
	if !ok {
		return ""
	}
	s, isString := v.(string)
	if !isString {
		p.fail(name, v, "a string")
	}
	return s
}

func (p *props) flag(name string) bool {
	_, v, ok := p.lookup(name)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			p.fail(name, v, "a boolean")
		}
		return parsed
	default:
		p.fail(name, v, "a boolean")
		return false
	}
}

func (p *props) integer(name string) *int {
	_, v, ok := p.lookup(name)
	if !ok {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		p.fail(name, v, "an integer")
		return nil
	}
	return &n
}

func (p *props) spacing(prefix string) types.Spacing {
	return types.Spacing{
		All:    p.integer(prefix),
		X:      p.integer(prefix + "X"),
		Y:      p.integer(prefix + "Y"),
		Top:    p.integer(prefix + "Top"),
		Right:  p.integer(prefix + "Right"),
		Bottom: p.integer(prefix + "Bottom"),
		Left:   p.integer(prefix + "Left"),
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}
