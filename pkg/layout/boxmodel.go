package layout

import (
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// Edges holds one resolved value per side of a box.
type Edges struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// Resolve turns a Spacing declaration into concrete edges. Each edge takes
// the explicit side value, else the matching axis (X for left and right, Y
// for top and bottom), else All, else zero. Negative inputs clamp to zero;
// ValidateSpacing is where they are reported.
func Resolve(s types.Spacing) Edges {
	return Edges{
		Top:    pick(s.Top, s.Y, s.All),
		Right:  pick(s.Right, s.X, s.All),
		Bottom: pick(s.Bottom, s.Y, s.All),
		Left:   pick(s.Left, s.X, s.All),
	}
}

func pick(candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return max(*c, 0)
		}
	}
	return 0
}

// ValidateSpacing reports the first negative declared value as an
// INVALID_CONSTRAINT error. prefix names the property ("padding" or
// "margin") and path locates the box in the tree.
func ValidateSpacing(s types.Spacing, prefix, path string) error {
	for _, f := range s.Fields(prefix) {
		if f.Value < 0 {
			return errors.Newf(errors.ErrInvalidConstraint, "%s.%s must not be negative, got %d", path, f.Name, f.Value).
				WithDetail("path", path).
				WithDetail("field", f.Name).
				WithDetail("value", f.Value)
		}
	}
	return nil
}
