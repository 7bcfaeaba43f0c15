package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/charmbracelet/x/ansi"
)

// AssertNoControlSequences fails if out contains an escape character.
func AssertNoControlSequences(t *testing.T, out string, msgAndArgs ...interface{}) {
	t.Helper()

	if i := strings.IndexByte(out, 0x1b); i >= 0 {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sOutput contains a control sequence at byte %d: %q", msg, i, out)
	}
}

// MaxLineWidth returns the visual width of the widest line of out.
func MaxLineWidth(out string) int {
	w := 0
	for _, line := range strings.Split(out, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// AssertMaxWidth fails if any line of out is wider than width columns.
func AssertMaxWidth(t *testing.T, out string, width int, msgAndArgs ...interface{}) {
	t.Helper()

	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > width {
			msg := formatMessage(msgAndArgs...)
			t.Errorf("%sLine %d is %d columns wide, limit %d: %q", msg, i, w, width, line)
		}
	}
}

// AssertErrorCode fails unless err carries code.
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()

	if err == nil {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected error %s, got nil", msg, code)
		return
	}
	if got := errors.GetErrorCode(err); got != code {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected error %s, got %s: %v", msg, code, got, err)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}
	return fmt.Sprint(msgAndArgs...) + "\n"
}
