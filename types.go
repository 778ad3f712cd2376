package botogram

import "context"

// UnknownPolicy controls how keys not declared by a schema are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (the platform adds fields over time).
	UnknownStrict                      // Reject unknown (and, with FromJSON, repeated) keys.
)

// Options bundles construction options.
type Options struct {
	Unknown  UnknownPolicy
	FailFast bool
	// CoerceNumericStrings lets integer and floating-point fields accept
	// strings such as "42" or "1.5".
	CoerceNumericStrings bool
}

type contextKey int

const _ctxKeyOptions contextKey = iota

// WithOptions returns a child context carrying construction options.
func WithOptions(ctx context.Context, opt Options) context.Context {
	return context.WithValue(ctx, _ctxKeyOptions, opt)
}

// OptionsFrom returns the options attached to ctx, or the zero Options.
func OptionsFrom(ctx context.Context) Options {
	if ctx == nil {
		return Options{}
	}
	opt, _ := ctx.Value(_ctxKeyOptions).(Options)
	return opt
}

// IsFailFast reports whether construction should stop on the first issue.
func IsFailFast(ctx context.Context) bool { return OptionsFrom(ctx).FailFast }
