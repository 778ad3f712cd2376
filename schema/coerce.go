package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	botogram "github.com/Haloghen/botogram"
)

// Declared type names, as reported in type_mismatch issues.
const (
	TypeText     = "text"
	TypeInteger  = "integer"
	TypeFloat    = "floating-point"
	TypeObject   = "object"
	TypeSequence = "sequence"
)

// Integer is the set of Go types an integer field may bind to.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating is the set of Go types a floating-point field may bind to.
type Floating interface {
	~float32 | ~float64
}

// CoerceText accepts Go strings only.
func CoerceText(raw any, _ botogram.Options) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// CoerceInt converts raw to V without losing information: fractional values,
// out-of-range values, bools and (unless opt allows it) strings are rejected.
func CoerceInt[V Integer](raw any, opt botogram.Options) (V, bool) {
	switch n := raw.(type) {
	case int:
		return fitInt[V](int64(n))
	case int8:
		return fitInt[V](int64(n))
	case int16:
		return fitInt[V](int64(n))
	case int32:
		return fitInt[V](int64(n))
	case int64:
		return fitInt[V](n)
	case uint:
		return fitUint[V](uint64(n))
	case uint8:
		return fitUint[V](uint64(n))
	case uint16:
		return fitUint[V](uint64(n))
	case uint32:
		return fitUint[V](uint64(n))
	case uint64:
		return fitUint[V](n)
	case float32:
		return fitFloat[V](float64(n))
	case float64:
		return fitFloat[V](n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return fitInt[V](i)
		}
		if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return fitUint[V](u)
		}
		if f, err := n.Float64(); err == nil {
			return fitFloat[V](f)
		}
	case string:
		if opt.CoerceNumericStrings {
			return CoerceInt[V](json.Number(strings.TrimSpace(n)), botogram.Options{})
		}
	}
	var zero V
	return zero, false
}

// CoerceFloat converts any Go numeric value or json.Number to V.
func CoerceFloat[V Floating](raw any, opt botogram.Options) (V, bool) {
	var f float64
	switch n := raw.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		v, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = v
	case string:
		if !opt.CoerceNumericStrings {
			return 0, false
		}
		return CoerceFloat[V](json.Number(strings.TrimSpace(n)), botogram.Options{})
	default:
		return 0, false
	}
	return V(f), true
}

// Sequence returns raw as []any when it is an ordered sequence of values.
func Sequence(raw any) ([]any, bool) {
	switch t := raw.(type) {
	case []any:
		return t, true
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func fitInt[V Integer](i int64) (V, bool) {
	v := V(i)
	if int64(v) != i || (v < 0) != (i < 0) {
		return 0, false
	}
	return v, true
}

func fitUint[V Integer](u uint64) (V, bool) {
	v := V(u)
	if uint64(v) != u || v < 0 {
		return 0, false
	}
	return v, true
}

func fitFloat[V Integer](f float64) (V, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MinInt64 && f < math.MaxInt64 {
		return fitInt[V](int64(f))
	}
	if f >= 0 && f < math.MaxUint64 {
		return fitUint[V](uint64(f))
	}
	return 0, false
}
