package layout

import (
	"fmt"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// RootPath names the root node in error details.
const RootPath = "root"

// ChildPath returns the path of the i-th child of the node at parent.
func ChildPath(parent string, i int) string {
	return fmt.Sprintf("%s.children[%d]", parent, i)
}

// Validate walks the tree and reports the first problem found: an
// unsupported or nil node (UNSUPPORTED_NODE), a negative padding or margin
// (INVALID_CONSTRAINT), an unknown border, direction or color (INVALID_STYLE)
// or a box that contains itself (CYCLIC_TREE).
func Validate(node types.Node) error {
	v := validator{onPath: make(map[*types.Box]bool)}
	return v.walk(node, RootPath)
}

type validator struct {
	onPath map[*types.Box]bool
}

func (v validator) walk(node types.Node, path string) error {
	switch n := node.(type) {
	case *types.Box:
		if n == nil {
			return unsupported(node, path)
		}
		if v.onPath[n] {
			return errors.Newf(errors.ErrCyclicTree, "%s contains itself", path).WithDetail("path", path)
		}
		if err := validateBox(n, path); err != nil {
			return err
		}
		v.onPath[n] = true
		defer delete(v.onPath, n)
		for i, child := range n.Children {
			if err := v.walk(child, ChildPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case *types.Text:
		if n == nil {
			return unsupported(node, path)
		}
		return validateColor(n.Style.Color, "color", path)
	default:
		return unsupported(node, path)
	}
}

func validateBox(b *types.Box, path string) error {
	if !b.Border.Valid() {
		return invalidStyle(path, "borderStyle", string(b.Border))
	}
	if !b.Direction.Valid() {
		return invalidStyle(path, "flexDirection", string(b.Direction))
	}
	if err := validateColor(b.BorderColor, "borderColor", path); err != nil {
		return err
	}
	if err := ValidateSpacing(b.Padding, "padding", path); err != nil {
		return err
	}
	return ValidateSpacing(b.Margin, "margin", path)
}

func validateColor(c types.Color, field, path string) error {
	if !c.Valid() {
		return invalidStyle(path, field, string(c))
	}
	return nil
}

func invalidStyle(path, field, value string) error {
	return errors.Newf(errors.ErrInvalidStyle, "%s.%s has unknown value %q", path, field, value).
		WithDetail("path", path).
		WithDetail("field", field).
		WithDetail("value", value)
}

func unsupported(node types.Node, path string) error {
	return errors.Newf(errors.ErrUnsupportedNode, "%s: unsupported node %T", path, node).
		WithDetail("path", path).
		WithDetail("type", fmt.Sprintf("%T", node))
}
