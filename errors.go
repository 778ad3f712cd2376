package botogram

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Haloghen/botogram/i18n"
)

// Issue codes
const (
	CodeMissingField     = "missing_field"
	CodeTypeMismatch     = "type_mismatch"
	CodeInvalidPayload   = "invalid_payload"
	CodeEmptyCollection  = "empty_collection"
	CodeUnknownKey       = "unknown_key"
	CodeDuplicateKey     = "duplicate_key"
	CodeSchemaDefinition = "schema_definition"
)

// Sentinel errors matched by Issues.Is, so callers can write
// errors.Is(err, botogram.ErrMissingField) without inspecting codes.
var (
	ErrMissingField    = errors.New("botogram: " + CodeMissingField)
	ErrTypeMismatch    = errors.New("botogram: " + CodeTypeMismatch)
	ErrInvalidPayload  = errors.New("botogram: " + CodeInvalidPayload)
	ErrEmptyCollection = errors.New("botogram: " + CodeEmptyCollection)
	ErrUnknownKey      = errors.New("botogram: " + CodeUnknownKey)
	ErrDuplicateKey    = errors.New("botogram: " + CodeDuplicateKey)
)

var sentinelByCode = map[string]error{
	CodeMissingField:    ErrMissingField,
	CodeTypeMismatch:    ErrTypeMismatch,
	CodeInvalidPayload:  ErrInvalidPayload,
	CodeEmptyCollection: ErrEmptyCollection,
	CodeUnknownKey:      ErrUnknownKey,
	CodeDuplicateKey:    ErrDuplicateKey,
}

// Issue represents a single payload validation failure.
type Issue struct {
	Path     string // JSON Pointer from the top-level payload (for example: /thumb/width).
	Code     string // One of the codes listed above.
	Field    string // Declared field name, empty for whole-payload issues.
	Expected string // Declared type name for type mismatches.
	Got      any    // Offending raw value, when there is one.
	Message  string
	Hint     string
	Cause    error
	// Params carries structured parameters for i18n.
	Params map[string]string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. type_mismatch at /width
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Code == CodeTypeMismatch {
			fmt.Fprintf(b, " (expected %s, got %T)", it.Expected, it.Got)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code behind the target sentinel.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s, ok := sentinelByCode[it.Code]; ok && s == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the first issue cause, if any.
func (iss Issues) Unwrap() error {
	for _, it := range iss {
		if it.Cause != nil {
			return it.Cause
		}
	}
	return nil
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

// Rebase prefixes every issue path with base. Codes, fields and values are kept
// as reported by the nested constructor.
func Rebase(base string, iss Issues) Issues {
	if base == "" || base == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// IssuesFromErr converts an error into Issues rooted at path, wrapping foreign
// errors as invalid payloads.
func IssuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return Rebase(path, iss)
	}
	return Issues{NewIssue(path, CodeInvalidPayload, "", err)}
}

// NewIssue builds an issue with a translated message.
func NewIssue(path, code, field string, cause error) Issue {
	if path == "" {
		path = "/"
	}
	it := Issue{Path: path, Code: code, Field: field, Cause: cause}
	it.Message = message(code, map[string]string{"field": field})
	if cause != nil {
		it.Hint = cause.Error()
	}
	return it
}

// MismatchIssue reports a value that could not be coerced to the declared type.
func MismatchIssue(path, field, expected string, got any) Issue {
	params := map[string]string{"field": field, "expected": expected, "got": fmt.Sprintf("%T", got)}
	return Issue{
		Path:     path,
		Code:     CodeTypeMismatch,
		Field:    field,
		Expected: expected,
		Got:      got,
		Message:  message(CodeTypeMismatch, params),
		Params:   params,
	}
}

// Fail returns a single-issue error.
func Fail(it Issue) error { return Issues{it} }

func message(code string, data map[string]string) string { return i18n.T(code, data) }
