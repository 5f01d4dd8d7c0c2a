package itksn

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by decoding and encoding.
const (
	CodeTruncated           = "truncated"
	CodeTrailingData        = "trailing_data"
	CodeNoMatchingVariant   = "no_matching_variant"
	CodeInvalidDiscriminant = "invalid_discriminant"
	CodeInvalidEnum         = "invalid_enum"
	CodeConstMismatch       = "const_mismatch"
	CodeInvalidNumber       = "invalid_number"
	// Encode path
	CodeUnknownSymbol    = "unknown_symbol"
	CodeInvalidType      = "invalid_type"
	CodeRequired         = "required"
	CodeWidthMismatch    = "width_mismatch"
	CodeInconsistentView = "inconsistent_view"
)

// Issue represents a single decode or encode failure.
type Issue struct {
	Path    string // JSON Pointer of the failing field (for example: /identifier/number).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending code, expected value, gap reason, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the serial number (-1 when unknown).
	// Params carries structured parameters (e.g., {"want":7, "got":3})
	// for i18n and diagnostics.
	Params map[string]any
}

// Issues is a collection of failures that implements error. Decoding and
// encoding stop at the first failure, so in practice it holds one entry.
type Issues []Issue

// Error summarizes the first few issues with their localized messages.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. truncated at /identifier/number (offset 7): not enough bytes (got=3, want=7)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Offset >= 0 {
			fmt.Fprintf(b, " (offset %d)", it.Offset)
		}
		if it.Message != "" && it.Message != it.Code {
			fmt.Fprintf(b, ": %s", it.Message)
		}
		if it.Hint != "" {
			fmt.Fprintf(b, ": %s", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
