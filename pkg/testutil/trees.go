package testutil

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/boxtext/pkg/types"
)

// Nested returns a chain of depth boxes, each holding a labeled text and the
// next box. Styles cycle through every border.
func Nested(depth int) *types.Box {
	borders := []types.BorderStyle{types.BorderSingle, types.BorderDouble, types.BorderRounded, types.BorderNone}
	var inner *types.Box
	for d := depth - 1; d >= 0; d-- {
		b := &types.Box{
			Border:   borders[d%len(borders)],
			Padding:  types.Axes(1, 0),
			Children: []types.Node{types.NewText(fmt.Sprintf("level %d", d))},
		}
		if inner != nil {
			b.Children = append(b.Children, inner)
		}
		inner = b
	}
	return inner
}

// Kitchen returns a tree exercising every node attribute: rows, columns,
// all borders, spacing on every side and every text style.
func Kitchen() *types.Box {
	return &types.Box{
		Border:      types.BorderDouble,
		BorderColor: types.ColorCyan,
		Padding:     types.Spacing{All: types.Int(1), Left: types.Int(2)},
		Children: []types.Node{
			&types.Text{Content: "Kitchen sink", Style: types.TextStyle{Bold: true, Color: types.ColorYellow}},
			types.NewRow(
				&types.Box{
					Border:   types.BorderRounded,
					Children: []types.Node{&types.Text{Content: "left column with some words", Style: types.TextStyle{Italic: true}}},
				},
				&types.Box{
					Border:   types.BorderSingle,
					Margin:   types.Spacing{Left: types.Int(1)},
					Children: []types.Node{&types.Text{Content: "right", Style: types.TextStyle{Underline: true, Color: "#ff8800"}}},
				},
			),
			&types.Box{
				Border:   types.BorderNone,
				Margin:   types.Axes(0, 1),
				Children: []types.Node{types.NewText("footer " + strings.Repeat("x", 30))},
			},
		},
	}
}
