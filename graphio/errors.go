package graphio

import "errors"

var (
	// ErrSyntax indicates malformed input; the message carries the line.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat indicates an unsupported Format value or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
