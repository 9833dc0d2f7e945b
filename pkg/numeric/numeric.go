// Package numeric converts between request numbers, exact decimals and the
// JSON rendering of stored numeric attributes.
package numeric

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize returns v with every decimal rendered for JSON output. Decimals
// without a fractional part become integers, everything else float64. Maps
// and slices are walked recursively; other values are returned unchanged.
func Normalize(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return renderDecimal(val)
	case *decimal.Decimal:
		if val == nil {
			return nil
		}
		return renderDecimal(*val)
	case json.Number:
		d, err := decimal.NewFromString(string(val))
		if err != nil {
			return val
		}
		return renderDecimal(d)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}

// NormalizeMap is Normalize for attribute maps.
func NormalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Normalize(m).(map[string]any)
}

func renderDecimal(d decimal.Decimal) any {
	if d.IsInteger() {
		if bi := d.BigInt(); bi.IsInt64() {
			return bi.Int64()
		}
		// Out of int64 range: keep every digit as a JSON integer literal.
		return json.Number(d.BigInt().String())
	}
	f, _ := d.Float64()
	return f
}

// ToDecimal converts a request value into an exact decimal. It accepts
// json.Number, numeric strings and Go numeric types; floats go through their
// shortest string form so 19.99 stays 19.99.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case json.Number:
		return decimal.NewFromString(string(val))
	case string:
		return decimal.NewFromString(strings.TrimSpace(val))
	case float64:
		return decimal.NewFromString(fmt.Sprint(val))
	case float32:
		return decimal.NewFromString(fmt.Sprint(val))
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int32:
		return decimal.NewFromInt32(val), nil
	case int64:
		return decimal.NewFromInt(val), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("value of type %T is not numeric", v)
	}
}
