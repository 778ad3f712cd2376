package schema

import (
	"context"
	"sort"
	"strings"

	botogram "github.com/Haloghen/botogram"
	js "github.com/Haloghen/botogram/jsonschema"
)

type field[T any] struct {
	name     string
	required bool
	bind     Binding[T]
}

// Object is a built schema for entity type T. It is immutable and safe for
// concurrent use.
type Object[T any] struct {
	name   string
	fields []field[T]
	index  map[string]int
}

// Ensure Object implements botogram.Codec[*T].
var _ botogram.Codec[*struct{ botogram.Base }] = (*Object[struct{ botogram.Base }])(nil)

// FieldInfo describes one declared field.
type FieldInfo struct {
	Name     string
	Type     string
	Required bool
}

// Name returns the entity name given to NewObject.
func (o *Object[T]) Name() string { return o.name }

// Fields lists declared fields in declaration order.
func (o *Object[T]) Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, FieldInfo{Name: f.name, Type: f.bind.expected, Required: f.required})
	}
	return out
}

// Construct builds a *T from a keyed mapping. Every required field must be
// present and coercible; absent optional fields stay nil. Nested objects get
// the same API handle. On failure no value is returned.
func (o *Object[T]) Construct(ctx context.Context, raw any, api botogram.API) (*T, error) {
	v, iss := o.construct(ctx, raw, api)
	if len(iss) > 0 {
		return nil, iss
	}
	return v, nil
}

func (o *Object[T]) construct(ctx context.Context, raw any, api botogram.API) (*T, botogram.Issues) {
	src, ok := raw.(map[string]any)
	if !ok {
		it := botogram.NewIssue("/", botogram.CodeInvalidPayload, "", nil)
		it.Expected = TypeObject
		it.Got = raw
		it.Hint = "expected keyed mapping"
		return nil, botogram.Issues{it}
	}
	failFast := botogram.IsFailFast(ctx)
	out := new(T)
	var iss botogram.Issues
	for _, f := range o.fields {
		path := pointer(f.name)
		val, exists := src[f.name]
		switch {
		case !exists:
			if f.required {
				iss = botogram.AppendIssues(iss, botogram.NewIssue(path, botogram.CodeMissingField, f.name, nil))
			}
		case val == nil:
			// null is absent for optional fields
			if f.required {
				iss = botogram.AppendIssues(iss, botogram.MismatchIssue(path, f.name, f.bind.expected, nil))
			}
		default:
			if i2 := f.bind.decode(ctx, out, val, api, path, f.name); len(i2) > 0 {
				iss = botogram.AppendIssues(iss, i2...)
			}
		}
		if failFast && len(iss) > 0 {
			return nil, iss
		}
	}
	if botogram.OptionsFrom(ctx).Unknown == botogram.UnknownStrict {
		iss = botogram.AppendIssues(iss, o.unknownIssues(src)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	any(out).(botogram.Binder).BindAPI(api)
	return out, nil
}

// unknownIssues reports undeclared keys in key-sorted order.
func (o *Object[T]) unknownIssues(src map[string]any) botogram.Issues {
	var uks []string
	for k := range src {
		if _, known := o.index[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss botogram.Issues
	for _, k := range uks {
		it := botogram.NewIssue(pointer(k), botogram.CodeUnknownKey, k, nil)
		it.Got = src[k]
		iss = botogram.AppendIssues(iss, it)
	}
	return iss
}

// Encode emits the declared fields that are set: required fields always,
// optional fields only when present. A nil v encodes to nil.
func (o *Object[T]) Encode(v *T) map[string]any {
	if v == nil {
		return nil
	}
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		if val, ok := f.bind.encode(v); ok {
			out[f.name] = val
		}
	}
	return out
}

// Serialize implements botogram.Codec; the result is a map[string]any.
func (o *Object[T]) Serialize(v *T) any {
	if v == nil {
		return nil
	}
	return o.Encode(v)
}

// SetAPI rebinds the handle on v and on every nested object it holds.
func (o *Object[T]) SetAPI(v *T, api botogram.API) {
	if v == nil {
		return
	}
	any(v).(botogram.Binder).BindAPI(api)
	for _, f := range o.fields {
		if f.bind.rebind != nil {
			f.bind.rebind(v, api)
		}
	}
}

// JSONSchema projects the schema. Unknown keys are accepted by default, so
// additionalProperties is true.
func (o *Object[T]) JSONSchema() *js.Schema {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for _, f := range o.fields {
		ps := &js.Schema{}
		if f.bind.schema != nil {
			if s := f.bind.schema(); s != nil {
				ps = s
			}
		}
		props[f.name] = ps
		if f.required {
			req = append(req, f.name)
		}
	}
	return &js.Schema{Title: o.name, Type: "object", Properties: props, Required: req, AdditionalProperties: true}
}

// pointer renders a top-level JSON Pointer, escaping '~' and '/' per RFC 6901.
func pointer(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}
