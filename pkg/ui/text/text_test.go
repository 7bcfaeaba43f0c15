// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test plain text rendering

package text_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/arthur-debert/boxtext/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, node types.Node, width int) string {
	t.Helper()
	r := text.New()
	b, err := layout.Layout(node, layout.Constraints{Width: width, Chrome: r.Chrome()})
	require.NoError(t, err)
	out, err := r.Render(b)
	require.NoError(t, err)
	return out
}

func TestPlainIgnoresBordersAndStyles(t *testing.T) {
	root := &types.Box{
		Border:      types.BorderDouble,
		BorderColor: types.ColorRed,
		Children: []types.Node{
			&types.Text{Content: "Hi", Style: types.TextStyle{Bold: true, Color: types.ColorGreen}},
		},
	}

	assert.Equal(t, "Hi", render(t, root, 0))
}

func TestPlainIndentsByDepth(t *testing.T) {
	root := types.NewBox(
		types.NewText("a"),
		types.NewBox(
			types.NewText("b"),
			types.NewBox(types.NewText("c")),
		),
		types.NewText("d"),
	)

	assert.Equal(t, "a\n  b\n    c\nd", render(t, root, 0))
}

func TestPlainAddsLeftPadding(t *testing.T) {
	root := types.NewBox(
		&types.Box{Padding: types.Spacing{Left: types.Int(3)}, Children: []types.Node{types.NewText("x")}},
	)

	assert.Equal(t, "     x", render(t, root, 0))
}

func TestPlainVerticalPadding(t *testing.T) {
	root := &types.Box{Padding: types.Axes(0, 1), Children: []types.Node{types.NewText("x")}}

	assert.Equal(t, "\nx\n", render(t, root, 0))
}

func TestPlainRow(t *testing.T) {
	assert.Equal(t, "Left Right", render(t, types.NewRow(types.NewText("Left"), types.NewText("Right")), 0))
}

func TestPlainWraps(t *testing.T) {
	root := types.NewBox(types.NewBox(types.NewText("the quick brown fox jumps")))

	out := render(t, root, 10)

	assert.Equal(t, "  the", strings.Split(out, "\n")[0])
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(l), 10)
	}
	assert.NotContains(t, out, "\x1b")
}
