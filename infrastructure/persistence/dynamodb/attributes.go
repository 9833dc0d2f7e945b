package dynamodb

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// marshalAttributes converts an attribute map into DynamoDB attribute values.
// Decimals and json.Number values are written as N with every digit kept.
func marshalAttributes(attrs map[string]any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toStoreValue(attrs))
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}
	return av, nil
}

// unmarshalAttributes decodes DynamoDB attribute values into a plain map with
// every number as a decimal.Decimal.
func unmarshalAttributes(av map[string]types.AttributeValue) (map[string]any, error) {
	if len(av) == 0 {
		return nil, nil
	}

	var out map[string]any
	err := attributevalue.UnmarshalMapWithOptions(av, &out, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal attributes: %w", err)
	}

	return fromStoreValue(out).(map[string]any), nil
}

func toStoreValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return attributevalue.Number(val.String())
	case *decimal.Decimal:
		if val == nil {
			return nil
		}
		return attributevalue.Number(val.String())
	case json.Number:
		return attributevalue.Number(val.String())
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toStoreValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toStoreValue(item)
		}
		return out
	default:
		return v
	}
}

func fromStoreValue(v any) any {
	switch val := v.(type) {
	case attributevalue.Number:
		d, err := decimal.NewFromString(string(val))
		if err != nil {
			return string(val)
		}
		return d
	case []attributevalue.Number:
		out := make([]any, len(val))
		for i, n := range val {
			out[i] = fromStoreValue(n)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = fromStoreValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromStoreValue(item)
		}
		return out
	default:
		return v
	}
}
