// Package config loads boxtext settings.
//
// Sources are layered, later ones winning: the embedded defaults, the user
// file at $XDG_CONFIG_HOME/boxtext/config.toml, BOXTEXT_* environment
// variables (BOXTEXT_RENDER_WIDTH sets render.width) and finally explicit
// overrides such as command-line flags.
package config
