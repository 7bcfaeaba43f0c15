package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/layout"
	"github.com/arthur-debert/boxtext/pkg/testutil"
	"github.com/arthur-debert/boxtext/pkg/types"
	"github.com/arthur-debert/boxtext/pkg/ui"
	"github.com/arthur-debert/boxtext/pkg/ui/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	for _, f := range ui.Formats {
		t.Run(f.String(), func(t *testing.T) {
			s, err := ui.NewStrategy(f, ui.Options{})
			require.NoError(t, err)
			assert.NotNil(t, s.Chrome())
		})
	}

	_, err := ui.NewStrategy(ui.FormatAuto, ui.Options{})
	testutil.AssertErrorCode(t, err, errors.ErrInvalidFormat)
}

func TestRenderScenarios(t *testing.T) {
	t.Run("row shares one line", func(t *testing.T) {
		out, err := ui.Render(types.NewRow(types.NewText("Left"), types.NewText("Right")), ui.Options{Format: ui.FormatPlain})
		require.NoError(t, err)
		assert.Equal(t, "Left Right", out)
	})

	t.Run("column stacks in order", func(t *testing.T) {
		out, err := ui.Render(types.NewBox(types.NewText("Top"), types.NewText("Bottom")), ui.Options{Format: ui.FormatUnicode})
		require.NoError(t, err)
		top := strings.Index(out, "Top")
		bottom := strings.Index(out, "Bottom")
		require.True(t, top >= 0 && bottom >= 0)
		assert.Less(t, top, bottom)
		assert.Contains(t, out[top:bottom], "\n")
	})

	t.Run("double inside single", func(t *testing.T) {
		tree := &types.Box{
			Border:   types.BorderSingle,
			Children: []types.Node{&types.Box{Border: types.BorderDouble, Children: []types.Node{types.NewText("x")}}},
		}
		out, err := ui.Render(tree, ui.Options{Format: ui.FormatUnicode})
		require.NoError(t, err)
		assert.Equal(t, "┌───┐\n│╔═╗│\n│║x║│\n│╚═╝│\n└───┘", out)
	})

	t.Run("bold text", func(t *testing.T) {
		tree := &types.Text{Content: "Bold text", Style: types.TextStyle{Bold: true}}

		out, err := ui.Render(tree, ui.Options{Format: ui.FormatUnicode})
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[1m")
		assert.Contains(t, out, "Bold text")

		out, err = ui.Render(tree, ui.Options{Format: ui.FormatMarkup})
		require.NoError(t, err)
		assert.Contains(t, out, "**Bold text**")
		testutil.AssertNoControlSequences(t, out)
	})

	t.Run("NO_COLOR selects plain", func(t *testing.T) {
		env := testutil.InteractiveEnv().With("NO_COLOR", "1")
		out, err := ui.Render(testutil.Kitchen(), ui.Options{Env: env})
		require.NoError(t, err)
		testutil.AssertNoControlSequences(t, out)
		assert.NotContains(t, out, "║")
	})
}

func TestWidthGuarantee(t *testing.T) {
	trees := map[string]types.Node{
		"kitchen": testutil.Kitchen(),
		"nested":  testutil.Nested(6),
	}
	lineFormats := []ui.Format{ui.FormatUnicode, ui.FormatASCII, ui.FormatPlain, ui.FormatMarkup}

	for name, tree := range trees {
		for _, f := range lineFormats {
			for _, w := range []int{1, 2, 5, 10, 17, 30, 80} {
				out, err := ui.Render(tree, ui.Options{Format: f, Width: w})
				require.NoError(t, err)
				testutil.AssertMaxWidth(t, out, w, fmt.Sprintf("%s/%s/%d", name, f, w))
			}
		}
	}
}

func TestNoColorHasNoSequences(t *testing.T) {
	for _, f := range ui.Formats {
		t.Run(f.String(), func(t *testing.T) {
			out, err := ui.Render(testutil.Kitchen(), ui.Options{Format: f, NoColor: true, Width: 40})
			require.NoError(t, err)
			testutil.AssertNoControlSequences(t, out)
		})
	}
}

func TestPlainHasNoGlyphs(t *testing.T) {
	out, err := ui.Render(testutil.Nested(5), ui.Options{Format: ui.FormatPlain})
	require.NoError(t, err)

	testutil.AssertNoControlSequences(t, out)
	assert.False(t, strings.ContainsAny(out, "+-|"), out)
	for _, r := range out {
		assert.False(t, r >= 0x2500 && r <= 0x257F, "box drawing rune %q", r)
	}
}

func TestASCIICollapsesBorders(t *testing.T) {
	out, err := ui.Render(testutil.Nested(4), ui.Options{Format: ui.FormatASCII})
	require.NoError(t, err)

	for _, r := range out {
		assert.Less(t, r, rune(0x80), "non-ascii rune %q", r)
	}
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "|")
}

func TestUnicodeDistinguishesBorders(t *testing.T) {
	out, err := ui.Render(testutil.Nested(3), ui.Options{Format: ui.FormatUnicode})
	require.NoError(t, err)

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╭")
}

func TestRenderIsIdempotent(t *testing.T) {
	tree := testutil.Kitchen()
	for _, f := range ui.Formats {
		opts := ui.Options{Format: f, Width: 33}
		first, err := ui.Render(tree, opts)
		require.NoError(t, err)
		second, err := ui.Render(tree, opts)
		require.NoError(t, err)
		assert.Equal(t, first, second, f.String())
	}
}

func TestStructuredRoundTrip(t *testing.T) {
	tree := testutil.Kitchen()

	out, err := ui.Render(tree, ui.Options{Format: ui.FormatStructured, Width: 10})
	require.NoError(t, err)
	assert.True(t, stdjson.Valid([]byte(out)))

	node, err := json.Decode([]byte(out), json.EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, types.Node(tree), node)

	again, err := ui.Render(node, ui.Options{Format: ui.FormatStructured})
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestStructuredYAML(t *testing.T) {
	out, err := ui.Render(types.NewText("hi"), ui.Options{Format: ui.FormatStructured, Structured: json.EncodingYAML})
	require.NoError(t, err)

	assert.Equal(t, "type: Text\nprops: {}\nchildren: hi", out)
}

type videoNode struct{}

func (videoNode) Kind() types.Kind { return "Video" }

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		node types.Node
		opts ui.Options
		code errors.ErrorCode
	}{
		{"unsupported node", types.NewBox(videoNode{}), ui.Options{Format: ui.FormatPlain}, errors.ErrUnsupportedNode},
		{"nil tree", nil, ui.Options{Format: ui.FormatUnicode}, errors.ErrUnsupportedNode},
		{"negative width", types.NewText("x"), ui.Options{Format: ui.FormatPlain, Width: -3}, errors.ErrInvalidConstraint},
		{"negative padding", &types.Box{Padding: types.Uniform(-1)}, ui.Options{Format: ui.FormatMarkup}, errors.ErrInvalidConstraint},
		{"unknown border", &types.Box{Border: "dashed"}, ui.Options{Format: ui.FormatASCII}, errors.ErrInvalidStyle},
		{"unknown format", types.NewText("x"), ui.Options{Format: ui.Format(42)}, errors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ui.Render(tt.node, tt.opts)
			assert.Empty(t, out)
			testutil.AssertErrorCode(t, err, tt.code)
		})
	}
}

func TestRecorder(t *testing.T) {
	var events []ui.Event
	rec := ui.RecorderFunc(func(e ui.Event) { events = append(events, e) })

	_, err := ui.Render(types.NewText("x"), ui.Options{Env: testutil.InteractiveEnv().Piped(), Recorder: rec})
	require.NoError(t, err)

	phases := make([]string, len(events))
	for i, e := range events {
		phases[i] = e.Phase
		assert.NoError(t, e.Err)
	}
	assert.Equal(t, []string{ui.PhaseDetect, ui.PhaseValidate, ui.PhaseLayout, ui.PhaseRender}, phases)
	assert.Equal(t, ui.FormatPlain, events[len(events)-1].Format)
}

func TestRecorderSeesFailure(t *testing.T) {
	var last ui.Event
	rec := ui.RecorderFunc(func(e ui.Event) { last = e })

	_, err := ui.Render(&types.Box{Direction: "sideways"}, ui.Options{Format: ui.FormatPlain, Recorder: rec})
	require.Error(t, err)

	assert.Equal(t, ui.PhaseValidate, last.Phase)
	assert.Equal(t, err, last.Err)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer

	err := ui.Fprint(&buf, types.NewRow(types.NewText("a"), types.NewText("b")), ui.Options{Format: ui.FormatPlain})
	require.NoError(t, err)

	assert.Equal(t, "a b\n", buf.String())
}

func TestFprintWritesNothingOnError(t *testing.T) {
	var buf bytes.Buffer

	err := ui.Fprint(&buf, videoNode{}, ui.Options{Format: ui.FormatPlain})

	testutil.AssertErrorCode(t, err, errors.ErrUnsupportedNode)
	assert.Zero(t, buf.Len())
}

func TestRenderIsSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	_, err := ui.Render(types.NewText("hi"), ui.Options{Format: ui.FormatPlain})
	require.NoError(t, err)
	_, err = ui.Render(types.NewText("hi"), ui.Options{Format: ui.FormatPlain, Width: -1})
	require.Error(t, err)

	assert.Empty(t, buf.String())
}

func TestRenderLogsToOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := ui.Render(types.NewText("hi"), ui.Options{Format: ui.FormatPlain, Logger: &logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"operation":"render"`)
	assert.Contains(t, buf.String(), "Operation completed")
}

func TestWideRunesInNarrowBoxLeaveAMark(t *testing.T) {
	out, err := ui.Render(types.NewBox(types.NewText("日本語テキスト")), ui.Options{Format: ui.FormatUnicode, Width: 3})
	require.NoError(t, err)

	assert.Contains(t, out, layout.Overflow)
	testutil.AssertMaxWidth(t, out, 3)
}
