package render

import (
	"errors"
	"fmt"
)

// ErrSinkUnavailable is recorded when text is written to a sink that has been closed.
var ErrSinkUnavailable = errors.New("output sink is closed")

// UnsupportedConstructError indicates a node variant or enum value that the
// renderer or dialect cannot express.
type UnsupportedConstructError struct {
	Construct string
	Dialect   string
	Hint      string
}

func (e UnsupportedConstructError) Error() string {
	msg := e.Construct + " is not supported"
	if e.Dialect != "" {
		msg = e.Dialect + ": " + msg
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewUnsupportedConstructError creates a new unsupported construct error.
// An empty dialect means the construct is unknown to the renderer itself.
func NewUnsupportedConstructError(dialect, construct string, hint ...string) error {
	err := UnsupportedConstructError{Construct: construct, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// MissingChildError indicates that a composite node lacks a child it cannot be
// rendered without.
type MissingChildError struct {
	Node  string
	Child string
}

func (e MissingChildError) Error() string {
	return fmt.Sprintf("%s requires %s", e.Node, e.Child)
}

// NewMissingChildError creates a new missing child error.
func NewMissingChildError(node, child string) error {
	return MissingChildError{Node: node, Child: child}
}
