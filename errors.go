package sqldom

import "github.com/zoobzio/sqldom/internal/render"

// ErrSinkUnavailable is reported when a render call writes to a closed sink.
var ErrSinkUnavailable = render.ErrSinkUnavailable

// UnsupportedConstructError is returned for node variants the renderer does not
// know and for constructs a dialect cannot express.
type UnsupportedConstructError = render.UnsupportedConstructError

// MissingChildError is returned when a composite node lacks a required child.
type MissingChildError = render.MissingChildError

// NewUnsupportedConstructError creates an UnsupportedConstructError.
// Dialects defined outside this module use it to reject constructs.
func NewUnsupportedConstructError(dialect, construct string, hint ...string) error {
	return render.NewUnsupportedConstructError(dialect, construct, hint...)
}
