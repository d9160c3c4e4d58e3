/*
File    : lox-v1/file/file.go
Author  : aQaTL
*/

// Package file handles loading Lox source files for the interpreter's
// file execution mode.
package file

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadSourceFile reads a source file and returns its contents as a string.
// Source files must be valid UTF-8; anything else is rejected before it
// reaches the lexer, which scans bytes and would otherwise misreport
// positions on malformed input.
//
// Parameters:
//   - path: Filesystem path of the source file
//
// Returns:
//   - string: The file contents
//   - error: A read or encoding failure
func ReadSourceFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %q is not valid UTF-8", path)
	}
	return string(data), nil
}
