package types

// Kind identifies the variant of a Node.
type Kind string

const (
	KindBox  Kind = "Box"
	KindText Kind = "Text"
)

// Node is a member of the render tree. The engine only understands *Box and
// *Text; any other implementation is rejected as unsupported.
type Node interface {
	Kind() Kind
}

// Direction is the main axis along which a Box arranges its children.
type Direction string

const (
	DirectionDefault Direction = ""
	DirectionColumn  Direction = "column"
	DirectionRow     Direction = "row"
)

// Resolved returns the effective direction, column when unset.
func (d Direction) Resolved() Direction {
	if d == DirectionDefault {
		return DirectionColumn
	}
	return d
}

// Valid reports whether d is a known direction (unset counts as valid).
func (d Direction) Valid() bool {
	switch d {
	case DirectionDefault, DirectionColumn, DirectionRow:
		return true
	}
	return false
}

// BorderStyle selects the glyph set drawn around a Box.
type BorderStyle string

const (
	BorderDefault BorderStyle = ""
	BorderSingle  BorderStyle = "single"
	BorderDouble  BorderStyle = "double"
	BorderRounded BorderStyle = "rounded"
	BorderNone    BorderStyle = "none"
)

// Resolved returns the effective border style, single when unset.
func (b BorderStyle) Resolved() BorderStyle {
	if b == BorderDefault {
		return BorderSingle
	}
	return b
}

// Valid reports whether b is a known border style (unset counts as valid).
func (b BorderStyle) Valid() bool {
	switch b {
	case BorderDefault, BorderSingle, BorderDouble, BorderRounded, BorderNone:
		return true
	}
	return false
}

// Box is a container node. Children are rendered in slice order.
type Box struct {
	Border      BorderStyle
	BorderColor Color
	Direction   Direction
	Padding     Spacing
	Margin      Spacing
	Children    []Node
}

// Kind implements Node.
func (b *Box) Kind() Kind { return KindBox }

// Text is a leaf node carrying a string and its style flags.
type Text struct {
	Content string
	Style   TextStyle
}

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

// NewBox returns a Box with default border and direction holding children.
func NewBox(children ...Node) *Box {
	return &Box{Children: children}
}

// NewRow returns a Box laying its children out left to right.
func NewRow(children ...Node) *Box {
	return &Box{Direction: DirectionRow, Children: children}
}

// NewText returns an unstyled Text node.
func NewText(content string) *Text {
	return &Text{Content: content}
}
