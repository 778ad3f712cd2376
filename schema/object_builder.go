package schema

import (
	"fmt"

	botogram "github.com/Haloghen/botogram"
)

// Builder declares the fields of an object schema for entity type T.
type Builder[T any] struct {
	name   string
	fields []field[T]
}

// FieldStep refines the field registered last.
type FieldStep[T any] struct {
	b *Builder[T]
	i int
}

// NewObject creates a builder for entity type T. name is used in JSON Schema
// output and definition errors.
func NewObject[T any](name string) *Builder[T] {
	return &Builder[T]{name: name}
}

// Field registers a field. Fields are optional until marked Required.
func (b *Builder[T]) Field(name string, bind Binding[T]) *FieldStep[T] {
	b.fields = append(b.fields, field[T]{name: name, bind: bind})
	return &FieldStep[T]{b: b, i: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (f *FieldStep[T]) Required() *Builder[T] {
	f.b.fields[f.i].required = true
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *FieldStep[T]) Optional() *Builder[T] {
	f.b.fields[f.i].required = false
	return f.b
}

func (f *FieldStep[T]) Field(name string, bind Binding[T]) *FieldStep[T] {
	return f.b.Field(name, bind)
}
func (f *FieldStep[T]) Build() (*Object[T], error) { return f.b.Build() }
func (f *FieldStep[T]) MustBuild() *Object[T]      { return f.b.MustBuild() }

// Build validates the declaration and returns the schema.
func (b *Builder[T]) Build() (*Object[T], error) {
	var iss botogram.Issues
	fail := func(path, hint string) {
		it := botogram.NewIssue(path, botogram.CodeSchemaDefinition, "", nil)
		it.Hint = hint
		iss = botogram.AppendIssues(iss, it)
	}
	if _, ok := any(new(T)).(botogram.Binder); !ok {
		fail("/", fmt.Sprintf("%s: entity type must embed botogram.Base", b.name))
	}
	index := make(map[string]int, len(b.fields))
	for i, f := range b.fields {
		path := pointer(f.name)
		switch {
		case f.name == "":
			fail("/", fmt.Sprintf("%s: field %d has an empty name", b.name, i))
			continue
		case f.bind.decode == nil || f.bind.encode == nil:
			fail(path, fmt.Sprintf("%s.%s: zero binding", b.name, f.name))
		case !f.required && !f.bind.nillable:
			fail(path, fmt.Sprintf("%s.%s: optional field must bind a pointer location", b.name, f.name))
		}
		if _, dup := index[f.name]; dup {
			fail(path, fmt.Sprintf("%s.%s: duplicate field", b.name, f.name))
			continue
		}
		index[f.name] = i
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fields := make([]field[T], len(b.fields))
	copy(fields, b.fields)
	return &Object[T]{name: b.name, fields: fields, index: index}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() *Object[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
