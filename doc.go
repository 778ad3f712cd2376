// Package botogram turns loosely typed chat-bot platform payloads into
// validated Go values and back.
//
// Layout:
//
//   - The root package holds the contracts shared by every entity: the API
//     handle, Codec, the Issues error model, Options and the JSON/YAML payload
//     helpers.
//   - schema/ provides the declarative object mechanism (required and
//     optional typed fields, nested objects, coercion, serialization).
//   - objects/ declares the platform media entities and the Photo aggregate.
//   - cmd/botogram is a small CLI to inspect payloads.
//
// Typical usage:
//
//	doc, err := botogram.FromJSON(ctx, objects.DocumentSchema, data, api)
//	if errors.Is(err, botogram.ErrMissingField) { ... }
//	wire := doc.Serialize()
//
// The API handle is never called by this module; it is stored on every
// constructed object so callers can act on files later.
package botogram
