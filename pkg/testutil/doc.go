// Package testutil provides helpers for testing boxtext components.
//
// Key components:
//   - FakeEnv: a map-backed environment for format detection
//   - Assertions on rendered output: no control sequences, maximum width,
//     error codes
//   - Tree builders for nested and wide fixtures
//
// All fixtures are built inline; nothing here touches the filesystem.
package testutil
