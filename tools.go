//go:build tools

package tools

// This file tracks the CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates the repository mocks (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: creates new files under migrations/
