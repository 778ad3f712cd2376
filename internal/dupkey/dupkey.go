// Package dupkey finds repeated object keys in a JSON document. Decoding into
// map[string]any silently keeps the last value, so strict callers scan the
// token stream first.
package dupkey

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Dup is one repeated key. Path is the JSON Pointer of the key inside the
// document.
type Dup struct {
	Path string
	Key  string
}

type frame struct {
	object       bool
	path         string
	keys         map[string]struct{}
	key          string
	index        int
	expectingKey bool
}

// Find scans data and returns every repeated key in document order. A syntax
// error stops the scan; the duplicates seen so far are returned with it.
func Find(data []byte) ([]Dup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  []Dup
		stack []*frame
	)
	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	// valueDone advances the enclosing container past one value.
	valueDone := func() {
		if f := top(); f != nil {
			if f.object {
				f.expectingKey = true
			} else {
				f.index++
			}
		}
	}
	valuePath := func() string {
		f := top()
		switch {
		case f == nil:
			return ""
		case f.object:
			return f.path + "/" + escape(f.key)
		default:
			return f.path + "/" + strconv.Itoa(f.index)
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return dups, nil
		}
		if err != nil {
			return dups, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				f := &frame{object: v == '{', path: valuePath(), expectingKey: v == '{'}
				if f.object {
					f.keys = make(map[string]struct{})
				}
				stack = append(stack, f)
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if f := top(); f != nil && f.object && f.expectingKey {
				if _, seen := f.keys[v]; seen {
					dups = append(dups, Dup{Path: f.path + "/" + escape(v), Key: v})
				}
				f.keys[v] = struct{}{}
				f.key = v
				f.expectingKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}
