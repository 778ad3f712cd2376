package botogram

import "context"

// API is the handle back to the platform session a payload came from. It is
// owned by the caller; objects only keep a reference so file-bearing entities
// can later ask the session to act on them.
type API interface {
	Call(ctx context.Context, method string, params map[string]any) (any, error)
}

// Base carries the API handle bound to an object. Every entity embeds it.
type Base struct {
	api API
}

// API returns the bound handle, or nil.
func (b *Base) API() API { return b.api }

// BindAPI sets the handle on this object only. Entities expose SetAPI, which
// also reaches nested objects.
func (b *Base) BindAPI(api API) { b.api = api }

// Object is implemented by every entity constructed from a payload.
type Object interface {
	API() API
	SetAPI(api API)
}

// Binder is the low-level hook used by constructors to attach a handle to a
// freshly built value.
type Binder interface {
	BindAPI(api API)
}

// FileRef identifies a file on the platform together with the handle able to
// fetch it.
type FileRef struct {
	ID   string
	Size *int
	API  API
}

// FileBearer is implemented by objects that reference a downloadable file.
type FileBearer interface {
	Object
	FileRef() FileRef
}

// Codec constructs T from an untyped payload and serializes it back.
// Serialize returns map[string]any for single objects and []any for
// sequences.
type Codec[T any] interface {
	Construct(ctx context.Context, raw any, api API) (T, error)
	Serialize(v T) any
}

// Construct is a thin wrapper around Codec.Construct.
func Construct[T any](ctx context.Context, c Codec[T], raw any, api API) (T, error) {
	return c.Construct(ctx, raw, api)
}

// SafeConstruct returns (zero, false) on any construction error.
func SafeConstruct[T any](ctx context.Context, c Codec[T], raw any, api API) (T, bool) {
	v, err := c.Construct(ctx, raw, api)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
