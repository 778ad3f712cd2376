package botogram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Haloghen/botogram/internal/dupkey"
)

// DecodeJSON decodes a single JSON document into the untyped shapes accepted
// by constructors. Numbers are kept as json.Number so integer fields never go
// through float64.
func DecodeJSON(data []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader is like DecodeJSON but reads from r.
func DecodeJSONReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Fail(NewIssue("/", CodeInvalidPayload, "", err))
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, Fail(NewIssue("/", CodeInvalidPayload, "", fmt.Errorf("trailing data after JSON document")))
	}
	return v, nil
}

// DecodeJSONStrict is like DecodeJSON but also rejects objects that repeat a
// key, reporting one duplicate_key issue per repetition.
func DecodeJSONStrict(data []byte) (any, error) {
	dups, _ := dupkey.Find(data)
	if len(dups) > 0 {
		var iss Issues
		for _, d := range dups {
			iss = AppendIssues(iss, NewIssue(d.Path, CodeDuplicateKey, d.Key, nil))
		}
		return nil, iss
	}
	return DecodeJSON(data)
}

// FromJSON decodes data and constructs T through c. Under UnknownStrict
// repeated keys are rejected as well.
func FromJSON[T any](ctx context.Context, c Codec[T], data []byte, api API) (T, error) {
	decode := DecodeJSON
	if OptionsFrom(ctx).Unknown == UnknownStrict {
		decode = DecodeJSONStrict
	}
	raw, err := decode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Construct(ctx, raw, api)
}

// ToJSON serializes v through c and encodes the result.
func ToJSON[T any](c Codec[T], v T) ([]byte, error) {
	return json.Marshal(c.Serialize(v))
}

// DecodeYAML decodes a single YAML document and normalizes it into the same
// shapes DecodeJSON produces (string-keyed maps and []any).
func DecodeYAML(data []byte) (any, error) {
	var node any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&node); err != nil {
		return nil, Fail(NewIssue("/", CodeInvalidPayload, "", err))
	}
	return yamlNormalizeValue(node), nil
}

// FromYAML decodes data as YAML and constructs T through c.
func FromYAML[T any](ctx context.Context, c Codec[T], data []byte, api API) (T, error) {
	raw, err := DecodeYAML(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Construct(ctx, raw, api)
}

// yamlNormalizeValue converts map[any]any nodes into map[string]any
// recursively. Non-string keys are dropped.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
