// Package schema provides the declarative object mechanism used by every
// platform entity.
//
// A schema is declared once per entity type with typed bindings, so field
// names, declared types and Go locations are checked at compile time:
//
//	type PhotoSize struct {
//	    botogram.Base
//	    FileID   string
//	    Width    int
//	    FileSize *int
//	}
//
//	var photoSize = schema.NewObject[PhotoSize]("PhotoSize").
//	    Field("file_id", schema.String(func(p *PhotoSize) *string { return &p.FileID })).Required().
//	    Field("width", schema.Int(func(p *PhotoSize) *int { return &p.Width })).Required().
//	    Field("file_size", schema.IntPtr(func(p *PhotoSize) **int { return &p.FileSize })).
//	    MustBuild()
//
//	ps, err := photoSize.Construct(ctx, raw, api)
//	wire := photoSize.Encode(ps)
//
// Optional fields bind pointer locations: nil means the key was absent (or
// null), never a coerced zero value. Nested and NestedPtr recurse into another
// schema, With and ListOf accept any botogram.Codec such as a hand-built
// aggregate.
//
// Errors are botogram.Issues. Missing required fields report missing_field,
// uncoercible values report type_mismatch naming the field, the declared type
// and the raw value, and non-mapping payloads report invalid_payload. Nested
// issues keep their code and only get their path rebased under the outer
// field. Construction collects every issue unless botogram.Options.FailFast is
// set on the context.
package schema
