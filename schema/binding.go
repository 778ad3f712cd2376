package schema

import (
	"context"
	"strconv"

	botogram "github.com/Haloghen/botogram"
	js "github.com/Haloghen/botogram/jsonschema"
)

// Binding ties one wire field to a location inside T. Build one with String,
// Int, Float, Nested, With or ListOf (or their Ptr forms for optional fields).
type Binding[T any] struct {
	expected string
	// nillable reports whether the location can represent an absent value.
	nillable bool
	decode   func(ctx context.Context, dst *T, raw any, api botogram.API, path, name string) botogram.Issues
	encode   func(src *T) (any, bool)
	rebind   func(dst *T, api botogram.API)
	schema   func() *js.Schema
}

func scalar[T, V any](expected, jsType string, coerce func(any, botogram.Options) (V, bool), emit func(V) any, get func(*T) *V) Binding[T] {
	return Binding[T]{
		expected: expected,
		decode: func(ctx context.Context, dst *T, raw any, _ botogram.API, path, name string) botogram.Issues {
			v, ok := coerce(raw, botogram.OptionsFrom(ctx))
			if !ok {
				return botogram.Issues{botogram.MismatchIssue(path, name, expected, raw)}
			}
			*get(dst) = v
			return nil
		},
		encode: func(src *T) (any, bool) { return emit(*get(src)), true },
		schema: func() *js.Schema { return &js.Schema{Type: jsType} },
	}
}

func scalarPtr[T, V any](expected, jsType string, coerce func(any, botogram.Options) (V, bool), emit func(V) any, get func(*T) **V) Binding[T] {
	return Binding[T]{
		expected: expected,
		nillable: true,
		decode: func(ctx context.Context, dst *T, raw any, _ botogram.API, path, name string) botogram.Issues {
			v, ok := coerce(raw, botogram.OptionsFrom(ctx))
			if !ok {
				return botogram.Issues{botogram.MismatchIssue(path, name, expected, raw)}
			}
			*get(dst) = &v
			return nil
		},
		encode: func(src *T) (any, bool) {
			p := *get(src)
			if p == nil {
				return nil, false
			}
			return emit(*p), true
		},
		schema: func() *js.Schema { return &js.Schema{Type: jsType} },
	}
}

func emitString(s string) any { return s }

func emitInt[V Integer](v V) any { return v }

func emitFloat[V Floating](v V) any { return float64(v) }

// String binds a text field.
func String[T any](get func(*T) *string) Binding[T] {
	return scalar(TypeText, "string", CoerceText, emitString, get)
}

// StringPtr binds an optional text field; nil means absent.
func StringPtr[T any](get func(*T) **string) Binding[T] {
	return scalarPtr(TypeText, "string", CoerceText, emitString, get)
}

// Int binds an integer field.
func Int[T any, V Integer](get func(*T) *V) Binding[T] {
	return scalar(TypeInteger, "integer", CoerceInt[V], emitInt[V], get)
}

// IntPtr binds an optional integer field; nil means absent.
func IntPtr[T any, V Integer](get func(*T) **V) Binding[T] {
	return scalarPtr(TypeInteger, "integer", CoerceInt[V], emitInt[V], get)
}

// Float binds a floating-point field.
func Float[T any, V Floating](get func(*T) *V) Binding[T] {
	return scalar(TypeFloat, "number", CoerceFloat[V], emitFloat[V], get)
}

// FloatPtr binds an optional floating-point field; nil means absent.
func FloatPtr[T any, V Floating](get func(*T) **V) Binding[T] {
	return scalarPtr(TypeFloat, "number", CoerceFloat[V], emitFloat[V], get)
}

// Nested binds a field whose declared type is another schema object.
func Nested[T, U any](s *Object[U], get func(*T) *U) Binding[T] {
	return Binding[T]{
		expected: TypeObject,
		decode: func(ctx context.Context, dst *T, raw any, api botogram.API, path, _ string) botogram.Issues {
			u, iss := s.construct(ctx, raw, api)
			if len(iss) > 0 {
				return botogram.Rebase(path, iss)
			}
			*get(dst) = *u
			return nil
		},
		encode: func(src *T) (any, bool) { return s.Encode(get(src)), true },
		rebind: func(dst *T, api botogram.API) { s.SetAPI(get(dst), api) },
		schema: func() *js.Schema { return s.JSONSchema() },
	}
}

// NestedPtr binds an optional schema-object field; nil means absent.
func NestedPtr[T, U any](s *Object[U], get func(*T) **U) Binding[T] {
	return Binding[T]{
		expected: TypeObject,
		nillable: true,
		decode: func(ctx context.Context, dst *T, raw any, api botogram.API, path, _ string) botogram.Issues {
			u, iss := s.construct(ctx, raw, api)
			if len(iss) > 0 {
				return botogram.Rebase(path, iss)
			}
			*get(dst) = u
			return nil
		},
		encode: func(src *T) (any, bool) {
			u := *get(src)
			if u == nil {
				return nil, false
			}
			return s.Encode(u), true
		},
		rebind: func(dst *T, api botogram.API) {
			if u := *get(dst); u != nil {
				s.SetAPI(u, api)
			}
		},
		schema: func() *js.Schema { return s.JSONSchema() },
	}
}

// With binds a field decoded by an arbitrary codec, such as a hand-built
// aggregate. The location is a pointer, so the field may be optional.
func With[T, V any](c botogram.Codec[*V], get func(*T) **V) Binding[T] {
	return Binding[T]{
		expected: TypeObject,
		nillable: true,
		decode: func(ctx context.Context, dst *T, raw any, api botogram.API, path, _ string) botogram.Issues {
			v, err := c.Construct(ctx, raw, api)
			if err != nil {
				return botogram.IssuesFromErr(path, err)
			}
			*get(dst) = v
			return nil
		},
		encode: func(src *T) (any, bool) {
			v := *get(src)
			if v == nil {
				return nil, false
			}
			return c.Serialize(v), true
		},
		rebind: func(dst *T, api botogram.API) {
			if v := *get(dst); v != nil {
				setAPI(v, api)
			}
		},
		schema: func() *js.Schema { return codecSchema(c) },
	}
}

// ListOf binds a sequence field whose elements are decoded by c. Element
// issues are reported under /<field>/<index>.
func ListOf[T, V any](c botogram.Codec[*V], get func(*T) *[]*V) Binding[T] {
	return Binding[T]{
		expected: TypeSequence,
		nillable: true,
		decode: func(ctx context.Context, dst *T, raw any, api botogram.API, path, name string) botogram.Issues {
			seq, ok := Sequence(raw)
			if !ok {
				return botogram.Issues{botogram.MismatchIssue(path, name, TypeSequence, raw)}
			}
			out := make([]*V, 0, len(seq))
			var iss botogram.Issues
			for i, el := range seq {
				v, err := c.Construct(ctx, el, api)
				if err != nil {
					iss = botogram.AppendIssues(iss, botogram.IssuesFromErr(path+"/"+strconv.Itoa(i), err)...)
					if botogram.IsFailFast(ctx) {
						return iss
					}
					continue
				}
				out = append(out, v)
			}
			if len(iss) > 0 {
				return iss
			}
			*get(dst) = out
			return nil
		},
		encode: func(src *T) (any, bool) {
			vs := *get(src)
			if vs == nil {
				return nil, false
			}
			out := make([]any, 0, len(vs))
			for _, v := range vs {
				out = append(out, c.Serialize(v))
			}
			return out, true
		},
		rebind: func(dst *T, api botogram.API) {
			for _, v := range *get(dst) {
				if v != nil {
					setAPI(v, api)
				}
			}
		},
		schema: func() *js.Schema { return &js.Schema{Type: "array", Items: codecSchema(c)} },
	}
}

// setAPI prefers the propagating SetAPI and falls back to binding v alone.
func setAPI(v any, api botogram.API) {
	switch o := v.(type) {
	case botogram.Object:
		o.SetAPI(api)
	case botogram.Binder:
		o.BindAPI(api)
	}
}

// codecSchema uses the codec's own JSON Schema when it provides one.
func codecSchema(c any) *js.Schema {
	if e, ok := c.(interface{ JSONSchema() *js.Schema }); ok {
		return e.JSONSchema()
	}
	return &js.Schema{}
}
