// Package vistree defines the path-addressed visualization tree that scene
// state is mirrored into.
//
// The core abstraction is [Target]: anything that accepts writes at
// hierarchical string paths. A live session ([Tree]) is a Target; so is a
// single animation [Frame], which buffers its writes into a [Clip] instead
// of applying them. Render code addresses both identically.
//
//   - [Tree]: a viewer session (open/wait lifecycle, animation publishing)
//   - [Clip]/[Frame]: ordered capture buffer for animation recording
//   - [MemTree]: in-memory backend used by the terminal viewer and tests
//
// The package owns no wire protocol; remote encodings are a backend concern.
package vistree
