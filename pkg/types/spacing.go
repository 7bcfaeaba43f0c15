package types

// Spacing declares padding or margin for a Box. Every field is optional; a
// nil field is "not declared". Precedence when resolving an edge is: the
// explicit side, then the matching axis (X for left/right, Y for
// top/bottom), then All, then zero.
type Spacing struct {
	All    *int
	X      *int
	Y      *int
	Top    *int
	Right  *int
	Bottom *int
	Left   *int
}

// Int returns a pointer to n, for filling Spacing literals.
func Int(n int) *int {
	return &n
}

// Uniform returns a Spacing with only All declared.
func Uniform(n int) Spacing {
	return Spacing{All: Int(n)}
}

// Axes returns a Spacing with X and Y declared.
func Axes(x, y int) Spacing {
	return Spacing{X: Int(x), Y: Int(y)}
}

// IsZero reports whether no field is declared.
func (s Spacing) IsZero() bool {
	return s.All == nil && s.X == nil && s.Y == nil &&
		s.Top == nil && s.Right == nil && s.Bottom == nil && s.Left == nil
}

// Field is a declared spacing value with its name, as used in props.
type Field struct {
	Name  string
	Value int
}

// Fields lists the declared values in a fixed order, naming them with the
// given prefix ("padding" yields padding, paddingX, ..., paddingLeft).
func (s Spacing) Fields(prefix string) []Field {
	var out []Field
	add := func(suffix string, v *int) {
		if v != nil {
			out = append(out, Field{Name: prefix + suffix, Value: *v})
		}
	}
	add("", s.All)
	add("X", s.X)
	add("Y", s.Y)
	add("Top", s.Top)
	add("Right", s.Right)
	add("Bottom", s.Bottom)
	add("Left", s.Left)
	return out
}
