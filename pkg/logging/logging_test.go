package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// withStateHome points the XDG state directory at dir for one test.
func withStateHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestSilentBeforeSetup(t *testing.T) {
	if log.Logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("global logger level = %v before SetupLogger, want disabled", log.Logger.GetLevel())
	}
	if GetLogger("ui").GetLevel() != zerolog.Disabled {
		t.Error("component loggers should inherit the silent global logger")
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			withStateHome(t, tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "boxtext", "boxtext.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	withStateHome(t, "/custom/state")

	got := getLogFilePath()
	if filepath.ToSlash(got) != "/custom/state/boxtext/boxtext.log" {
		t.Errorf("getLogFilePath() = %s", got)
	}
}

func TestLevelFor(t *testing.T) {
	if LevelFor(-1) != zerolog.WarnLevel {
		t.Errorf("negative verbosity should be warn, got %v", LevelFor(-1))
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("layout")
	logger.Info().Msg("test message")

	if !strings.Contains(buf.String(), `"component":"layout"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	LogCommand("render", []string{"tree.json", "--width", "40"})

	out := buf.String()
	for _, want := range []string{"render", "tree.json", "Executing command"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "layout")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("missing start or completion: %s", out)
	}
	if !strings.Contains(out, `"duration"`) {
		t.Errorf("missing duration: %s", out)
	}
}
