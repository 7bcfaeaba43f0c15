package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Environment is what format detection reads: variables and whether the
// output is attached to a terminal.
type Environment interface {
	LookupEnv(key string) (string, bool)
	IsTerminal() bool
}

// ProcessEnv reads the process environment and checks File for a terminal.
type ProcessEnv struct {
	File *os.File
}

// LookupEnv implements Environment.
func (p ProcessEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// IsTerminal implements Environment.
func (p ProcessEnv) IsTerminal() bool {
	if p.File == nil {
		return false
	}
	fd := p.File.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ciVars are set by common CI services. Their presence alone is the signal.
var ciVars = []string{
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"BUILDKITE",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_URL",
	"TEAMCITY_VERSION",
}

// glyphlessTerms handle color but lack reliable box-drawing characters.
// Terminals without color at all are caught by termenv's profile.
var glyphlessTerms = map[string]bool{
	"linux":  true,
	"vt100":  true,
	"vt102":  true,
	"vt220":  true,
	"ansi":   true,
	"cons25": true,
}

// termEnviron exposes an Environment to termenv.
type termEnviron struct {
	env Environment
}

func (t termEnviron) Environ() []string { return nil }

func (t termEnviron) Getenv(key string) string {
	v, _ := t.env.LookupEnv(key)
	return v
}

// colorProfile asks termenv what env's terminal can display.
func colorProfile(env Environment) termenv.Profile {
	out := termenv.NewOutput(io.Discard,
		termenv.WithEnvironment(termEnviron{env: env}),
		termenv.WithTTY(env.IsTerminal()),
	)
	return out.EnvColorProfile()
}

// Detection is the outcome of format detection.
type Detection struct {
	Format Format
	Reason string
}

// DetectFormat picks a format for env. Color is disabled first, then CI,
// then a missing terminal all yield Plain; a minimal terminal or a non UTF-8
// locale yields ASCII; everything else gets Unicode.
func DetectFormat(env Environment) Format {
	return Explain(env).Format
}

// Detect detects the format for output written to f by this process.
func Detect(f *os.File) Format {
	return DetectFormat(ProcessEnv{File: f})
}

// Explain runs the detection chain and reports which rule decided.
func Explain(env Environment) Detection {
	if env == nil {
		return Detection{FormatPlain, "environment unavailable"}
	}
	if v, _ := env.LookupEnv("NO_COLOR"); v != "" {
		return Detection{FormatPlain, "NO_COLOR is set"}
	}
	if v, ok := env.LookupEnv("CLICOLOR"); ok && v == "0" {
		return Detection{FormatPlain, "CLICOLOR is 0"}
	}
	if name, ok := ciSignal(env); ok {
		return Detection{FormatPlain, "running under CI (" + name + ")"}
	}
	if !env.IsTerminal() {
		return Detection{FormatPlain, "output is not a terminal"}
	}
	term, _ := env.LookupEnv("TERM")
	if colorProfile(env) == termenv.Ascii {
		return Detection{FormatASCII, "TERM=" + term + " has no color support"}
	}
	if glyphlessTerms[strings.ToLower(term)] {
		return Detection{FormatASCII, "TERM=" + term + " lacks box-drawing glyphs"}
	}
	if locale, ok := activeLocale(env); ok && !isUTF8(locale) {
		return Detection{FormatASCII, "locale " + locale + " is not UTF-8"}
	}
	return Detection{FormatUnicode, "interactive terminal"}
}

func ciSignal(env Environment) (string, bool) {
	if v, ok := env.LookupEnv("CI"); ok && truthy(v) {
		return "CI", true
	}
	for _, name := range ciVars {
		if _, ok := env.LookupEnv(name); ok {
			return name, true
		}
	}
	return "", false
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// activeLocale follows POSIX precedence: LC_ALL, then LC_CTYPE, then LANG.
func activeLocale(env Environment) (string, bool) {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v, _ := env.LookupEnv(key); v != "" {
			return v, true
		}
	}
	return "", false
}

func isUTF8(locale string) bool {
	l := strings.ToLower(locale)
	return strings.Contains(l, "utf-8") || strings.Contains(l, "utf8")
}
