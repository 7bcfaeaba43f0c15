// Package layout arranges a node tree into lines of styled spans.
//
// Text is word-wrapped to the available width. Boxes lay their children out
// under a budget reduced by their own padding, frame and margin, combine them
// along the main axis, then wrap padding, frame and margin around the result.
// What a frame looks like is decided by the output format through Chrome;
// the arithmetic is the same for every format.
//
// Widths are visual column counts. When Constraints.Width is positive no
// output line is wider than it: content that cannot fit even after wrapping
// (a frame wider than the budget) is clipped.
package layout

import (
	"strings"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/types"
)

// RowGap is the number of blank columns between siblings in a row.
const RowGap = 1

// Constraints control a layout pass.
type Constraints struct {
	// Width is the maximum output width in columns; 0 means unconstrained.
	Width int
	// Chrome supplies format-specific decoration. Nil means BareChrome.
	Chrome Chrome
}

// Block is the laid-out form of one node. Lines is the node's complete
// rendering, margin included, every line padded to Width.
type Block struct {
	Node  types.Node
	Kind  types.Kind
	Path  string
	Depth int

	// Budget is the width the node was laid out under (0: unconstrained).
	Budget int
	Width  int
	Lines  []Line

	// Box fields.
	Border    types.BorderStyle
	Direction types.Direction
	Padding   Edges
	Margin    Edges
	Children  []*Block

	// Text fields: the wrapped content before decoration.
	Wrapped []string
}

// Height returns the number of lines.
func (b *Block) Height() int { return len(b.Lines) }

// String returns the block's lines joined by newlines, without styling.
func (b *Block) String() string {
	rows := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

// Layout lays out node under c. It does not validate the tree beyond what
// it needs to walk it; callers wanting full validation run Validate first.
func Layout(node types.Node, c Constraints) (*Block, error) {
	if c.Width < 0 {
		return nil, errors.Newf(errors.ErrInvalidConstraint, "width must not be negative, got %d", c.Width).
			WithDetail("field", "width").
			WithDetail("value", c.Width)
	}
	if c.Chrome == nil {
		c.Chrome = BareChrome{}
	}
	e := engine{chrome: c.Chrome}
	return e.layout(node, c.Width, 0, RootPath)
}

type engine struct {
	chrome Chrome
	// inline is set below a row, where boxes do not start a line.
	inline bool
}

func (e engine) layout(node types.Node, budget, depth int, path string) (*Block, error) {
	switch n := node.(type) {
	case *types.Text:
		if n != nil {
			return e.layoutText(n, budget, depth, path), nil
		}
	case *types.Box:
		if n != nil {
			return e.layoutBox(n, budget, depth, path)
		}
	}
	return nil, unsupported(node, path)
}

func (e engine) layoutText(t *types.Text, budget, depth int, path string) *Block {
	open, end := e.chrome.Decorate(t.Style)
	overhead := Width(open) + Width(end)

	wrapWidth := 0
	if budget > 0 {
		wrapWidth = max(budget-overhead, 1)
	}
	wrapped := WrapEscaped(Sanitize(t.Content), wrapWidth, e.chrome.Escape)

	lines := make([]Line, 0, len(wrapped))
	for _, w := range wrapped {
		var l Line
		if w == "" {
			lines = append(lines, l)
			continue
		}
		if open != "" {
			l = append(l, Span{Text: open})
		}
		l = append(l, Span{Text: w, Style: t.Style})
		if end != "" {
			l = append(l, Span{Text: end})
		}
		lines = append(lines, l)
	}

	b := &Block{
		Node:    t,
		Kind:    types.KindText,
		Path:    path,
		Depth:   depth,
		Budget:  budget,
		Wrapped: wrapped,
	}
	b.finish(lines, budget)
	return b
}

func (e engine) layoutBox(box *types.Box, budget, depth int, path string) (*Block, error) {
	frame := e.chrome.Frame(box, depth)
	if f, ok := e.chrome.(InlineFramer); ok && e.inline {
		frame = f.InlineFrame(box, depth)
	}
	padding := Resolve(box.Padding)
	margin := Resolve(box.Margin)
	if f, ok := e.chrome.(EdgeFilter); ok {
		padding, margin = f.FilterEdges(padding, margin)
	}
	direction := box.Direction.Resolved()

	inner := 0
	if budget > 0 {
		chrome := margin.Horizontal() + Width(frame.Left) + Width(frame.Right) + padding.Horizontal()
		inner = max(budget-chrome, 1)
	}

	var (
		children []*Block
		err      error
	)
	if direction == types.DirectionRow {
		children, err = e.layoutRow(box.Children, inner, depth+1, path)
	} else {
		children, err = e.layoutChildren(box.Children, func(int) int { return inner }, depth+1, path)
	}
	if err != nil {
		return nil, err
	}

	var content []Line
	if direction == types.DirectionRow {
		content = joinRow(children)
	} else {
		content = stackColumn(children)
	}

	lines := wrapBox(content, padding, frame, margin)

	b := &Block{
		Node:      box,
		Kind:      types.KindBox,
		Path:      path,
		Depth:     depth,
		Budget:    budget,
		Border:    box.Border.Resolved(),
		Direction: direction,
		Padding:   padding,
		Margin:    margin,
		Children:  children,
	}
	b.finish(lines, budget)
	return b, nil
}

func (e engine) layoutChildren(nodes []types.Node, budgetFor func(int) int, depth int, parent string) ([]*Block, error) {
	blocks := make([]*Block, 0, len(nodes))
	for i, child := range nodes {
		cb, err := e.layout(child, budgetFor(i), depth, ChildPath(parent, i))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, cb)
	}
	return blocks, nil
}

// layoutRow lays children out side by side. When their natural widths do not
// fit the budget, the budget is shared out narrowest first and the children
// are laid out again under their share.
func (e engine) layoutRow(nodes []types.Node, budget, depth int, parent string) ([]*Block, error) {
	e.inline = true
	blocks, err := e.layoutChildren(nodes, func(int) int { return budget }, depth, parent)
	if err != nil || budget <= 0 || len(blocks) == 0 {
		return blocks, err
	}

	natural := make([]int, len(blocks))
	total := RowGap * (len(blocks) - 1)
	for i, b := range blocks {
		natural[i] = b.Width
		total += b.Width
	}
	if total <= budget {
		return blocks, nil
	}

	shares := shareOut(natural, budget-RowGap*(len(blocks)-1))
	return e.layoutChildren(nodes, func(i int) int { return shares[i] }, depth, parent)
}

// shareOut divides avail columns among items wanting natural widths, giving
// the narrowest their full width first and splitting the rest evenly. Every
// share is at least one column.
func shareOut(natural []int, avail int) []int {
	order := make([]int, len(natural))
	for i := range order {
		order[i] = i
	}
	// Insertion sort keeps equal widths in document order.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && natural[order[j]] < natural[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	shares := make([]int, len(natural))
	remaining := avail
	for k, idx := range order {
		fair := remaining / (len(order) - k)
		share := max(min(natural[idx], fair), 1)
		shares[idx] = share
		remaining -= share
	}
	return shares
}

// stackColumn places blocks one under another.
func stackColumn(blocks []*Block) []Line {
	var lines []Line
	for _, b := range blocks {
		lines = append(lines, b.Lines...)
	}
	return lines
}

// joinRow places blocks left to right, separated by RowGap columns. Shorter
// blocks are padded with blank lines to the tallest sibling.
func joinRow(blocks []*Block) []Line {
	height := 0
	for _, b := range blocks {
		height = max(height, b.Height())
	}

	lines := make([]Line, height)
	for row := range lines {
		var l Line
		for i, b := range blocks {
			if i > 0 {
				l = append(l, spaces(RowGap))
			}
			if row < b.Height() {
				l = append(l, padRight(b.Lines[row], b.Width)...)
			} else {
				l = append(l, blankLine(b.Width)...)
			}
		}
		lines[row] = l
	}
	return lines
}

// wrapBox applies padding, then the frame, then the margin around content.
func wrapBox(content []Line, padding Edges, frame Frame, margin Edges) []Line {
	contentWidth := maxWidth(content)
	innerWidth := contentWidth + padding.Horizontal()

	var padded []Line
	for range padding.Top {
		padded = append(padded, blankLine(innerWidth))
	}
	for _, l := range content {
		padded = append(padded, surround(padRight(l, contentWidth), spaces(padding.Left), spaces(padding.Right)))
	}
	for range padding.Bottom {
		padded = append(padded, blankLine(innerWidth))
	}

	var framed []Line
	if frame.Top != nil {
		framed = append(framed, rule(*frame.Top, innerWidth, frame.Style))
	}
	left := Span{Text: frame.Left, Style: frame.Style}
	right := Span{Text: frame.Right, Style: frame.Style}
	for _, l := range padded {
		framed = append(framed, surround(padRight(l, innerWidth), left, right))
	}
	if frame.Bottom != nil {
		framed = append(framed, rule(*frame.Bottom, innerWidth, frame.Style))
	}

	outerWidth := maxWidth(framed)
	fullWidth := outerWidth + margin.Horizontal()

	var lines []Line
	for range margin.Top {
		lines = append(lines, blankLine(fullWidth))
	}
	for _, l := range framed {
		lines = append(lines, surround(padRight(l, outerWidth), spaces(margin.Left), spaces(margin.Right)))
	}
	for range margin.Bottom {
		lines = append(lines, blankLine(fullWidth))
	}
	return lines
}

func rule(r Rule, width int, st types.TextStyle) Line {
	fill := ""
	if fw := Width(r.Fill); fw > 0 && width > 0 {
		fill = strings.Repeat(r.Fill, width/fw)
	}
	return Line{{Text: r.Left + fill + r.Right, Style: st}}
}

// finish clips lines to the budget and pads them to a common width.
func (b *Block) finish(lines []Line, budget int) {
	if budget > 0 {
		for i, l := range lines {
			lines[i] = clip(l, budget)
		}
	}
	b.Width = maxWidth(lines)
	for i, l := range lines {
		lines[i] = padRight(l, b.Width)
	}
	b.Lines = lines
}
