// Package types defines the node tree consumed by the rendering engine.
//
// A tree is built from two variants, *Box (a container) and *Text (a styled
// string), both implementing Node. The variants are plain structs: the engine
// reads them, never mutates them, and resolves every optional field to a
// concrete value during layout.
package types
