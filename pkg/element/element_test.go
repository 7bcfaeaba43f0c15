package element_test

import (
	"testing"

	"github.com/arthur-debert/boxtext/pkg/element"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNode(t *testing.T) {
	el := element.New("Box", map[string]any{
		"borderStyle":   "double",
		"borderColor":   "cyan",
		"flexDirection": "row",
		"padding":       1,
		"paddingX":      2.0,
		"marginTop":     "3",
	},
		element.New("Text", map[string]any{"bold": true, "color": "red"}, "Hello, ", "world"),
		"bare",
	)

	node, err := element.ToNode(el)
	require.NoError(t, err)

	box, ok := node.(*types.Box)
	require.True(t, ok)
	assert.Equal(t, types.BorderDouble, box.Border)
	assert.Equal(t, types.ColorCyan, box.BorderColor)
	assert.Equal(t, types.DirectionRow, box.Direction)
	assert.Equal(t, types.Spacing{All: types.Int(1), X: types.Int(2)}, box.Padding)
	assert.Equal(t, types.Spacing{Top: types.Int(3)}, box.Margin)

	require.Len(t, box.Children, 2)
	assert.Equal(t, &types.Text{
		Content: "Hello, world",
		Style:   types.TextStyle{Bold: true, Color: types.ColorRed},
	}, box.Children[0])
	assert.Equal(t, types.NewText("bare"), box.Children[1])
}

func TestToNodeDirectionAlias(t *testing.T) {
	node, err := element.ToNode(element.New("box", map[string]any{"direction": "row"}))
	require.NoError(t, err)

	assert.Equal(t, types.DirectionRow, node.(*types.Box).Direction)
}

func TestToNodeFlattensNestedText(t *testing.T) {
	el := element.New("Text", nil, "a ", element.New("Text", map[string]any{"italic": true}, "b"), " c")

	node, err := element.ToNode(el)
	require.NoError(t, err)

	assert.Equal(t, "a b c", node.(*types.Text).Content)
}

func TestToNodeErrors(t *testing.T) {
	tests := []struct {
		name string
		el   *element.Element
		code errors.ErrorCode
		path string
	}{
		{
			name: "unknown type",
			el:   element.New("Image", nil),
			code: errors.ErrUnsupportedNode,
			path: "root",
		},
		{
			name: "unknown child type",
			el:   element.New("Box", nil, element.New("Text", nil, "ok"), element.New("Spinner", nil)),
			code: errors.ErrUnsupportedNode,
			path: "root.children[1]",
		},
		{
			name: "box inside text",
			el:   element.New("Text", nil, element.New("Box", nil)),
			code: errors.ErrUnsupportedNode,
			path: "root.children[0]",
		},
		{
			name: "non integer padding",
			el:   element.New("Box", map[string]any{"padding": 1.5}),
			code: errors.ErrInvalidInput,
			path: "root",
		},
		{
			name: "non boolean bold",
			el:   element.New("Text", map[string]any{"bold": "very"}),
			code: errors.ErrInvalidInput,
			path: "root",
		},
		{
			name: "non string border",
			el:   element.New("Box", map[string]any{"borderStyle": 3}),
			code: errors.ErrInvalidInput,
			path: "root",
		},
		{
			name: "unsupported child value",
			el:   element.New("Box", nil, 42),
			code: errors.ErrUnsupportedNode,
			path: "root.children[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := element.ToNode(tt.el)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestToNodeKeepsUnvalidatedValues(t *testing.T) {
	// Style names are checked by layout validation, not here.
	node, err := element.ToNode(element.New("Box", map[string]any{"borderStyle": "dotted"}))
	require.NoError(t, err)

	assert.Equal(t, types.BorderStyle("dotted"), node.(*types.Box).Border)
}
