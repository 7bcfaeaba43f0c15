package testutil

// FakeEnv is an environment backed by a map. It satisfies ui.Environment.
type FakeEnv struct {
	Vars     map[string]string
	Terminal bool
}

// NewFakeEnv creates an environment with the given variables, attached to a
// terminal.
func NewFakeEnv(vars map[string]string) *FakeEnv {
	if vars == nil {
		vars = map[string]string{}
	}
	return &FakeEnv{Vars: vars, Terminal: true}
}

// InteractiveEnv is an environment a UTF-8 xterm would present.
func InteractiveEnv() *FakeEnv {
	return NewFakeEnv(map[string]string{
		"TERM": "xterm-256color",
		"LANG": "en_US.UTF-8",
	})
}

// LookupEnv returns the variable and whether it is set.
func (e *FakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// IsTerminal reports whether output is attached to a terminal.
func (e *FakeEnv) IsTerminal() bool {
	return e.Terminal
}

// With returns a copy of e with key set to value.
func (e *FakeEnv) With(key, value string) *FakeEnv {
	c := e.clone()
	c.Vars[key] = value
	return c
}

// Piped returns a copy of e that is not attached to a terminal.
func (e *FakeEnv) Piped() *FakeEnv {
	c := e.clone()
	c.Terminal = false
	return c
}

func (e *FakeEnv) clone() *FakeEnv {
	vars := make(map[string]string, len(e.Vars)+1)
	for k, v := range e.Vars {
		vars[k] = v
	}
	return &FakeEnv{Vars: vars, Terminal: e.Terminal}
}
