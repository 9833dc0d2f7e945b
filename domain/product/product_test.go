package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPayload_RequiredAndExtensionAttributes(t *testing.T) {
	payload := map[string]any{
		"productId":    "p-1",
		"category":     "books",
		"productName":  "Go in Action",
		"productPrice": json.Number("19.99"),
		"stock":        json.Number("3"),
		"tags":         []any{"go", "programming"},
	}

	p, err := FromPayload(payload)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, Key{ProductID: "p-1", Category: "books"}, p.Key())
	assert.True(t, decimal.RequireFromString("19.99").Equal(*p.ProductPrice))
	assert.Equal(t, map[string]any{
		"stock": json.Number("3"),
		"tags":  []any{"go", "programming"},
	}, p.Attributes)

	item := p.Item()
	assert.Len(t, item, 6)
	assert.Equal(t, "Go in Action", item[AttrProductName])
	assert.Equal(t, json.Number("3"), item["stock"])
}

func fullPayload(overrides map[string]any) map[string]any {
	payload := map[string]any{
		"productId":    "p-1",
		"category":     "books",
		"productName":  "n",
		"productPrice": json.Number("1"),
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func TestFromPayload_InvalidTypes(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"numeric id", fullPayload(map[string]any{"productId": json.Number("1")}), "productId"},
		{"null id", fullPayload(map[string]any{"productId": nil}), "productId"},
		{"object category", fullPayload(map[string]any{"category": map[string]any{}}), "category"},
		{"numeric name", fullPayload(map[string]any{"productName": json.Number("5")}), "productName"},
		{"text price", fullPayload(map[string]any{"productPrice": "cheap"}), "productPrice"},
		{"numeric string price", fullPayload(map[string]any{"productPrice": "19.99"}), "productPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPayload(tt.payload)

			var fieldErr *InvalidFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestFromPayload_FirstInvalidFieldInDeclaredOrder(t *testing.T) {
	payload := map[string]any{
		"productId":    json.Number("1"),
		"category":     json.Number("2"),
		"productName":  json.Number("3"),
		"productPrice": "x",
	}

	for i := 0; i < 50; i++ {
		_, err := FromPayload(payload)

		var fieldErr *InvalidFieldError
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "productId", fieldErr.Field)
	}
}

func TestFromPayload_ReportsEveryMissingField(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			name:    "empty",
			payload: map[string]any{"description": "x"},
			want:    []string{"productId", "category", "productName", "productPrice"},
		},
		{
			name:    "missing category and price",
			payload: map[string]any{"productId": "p-1", "productName": "n"},
			want:    []string{"category", "productPrice"},
		},
		{
			name:    "empty strings still count as present",
			payload: map[string]any{"productId": "", "category": "", "productName": ""},
			want:    []string{"productPrice"},
		},
		{
			name:    "presence checked before types",
			payload: map[string]any{"productId": json.Number("5")},
			want:    []string{"category", "productName", "productPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPayload(tt.payload)

			var missing *MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Fields)
		})
	}
}

func TestValidate_ReportsNilRequiredFields(t *testing.T) {
	id := "p-1"
	p := &Product{ProductID: &id}

	err := p.Validate()

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"category", "productName", "productPrice"}, missing.Fields)
}

func TestValidate_ZeroPriceIsPresent(t *testing.T) {
	p, err := FromPayload(fullPayload(map[string]any{"productPrice": json.Number("0")}))
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestKey(t *testing.T) {
	composite := Key{ProductID: "p-1", Category: "books"}
	assert.Equal(t, map[string]any{"productId": "p-1", "category": "books"}, composite.Attributes())
	assert.Equal(t, "p-1/books", composite.String())

	partition := Key{ProductID: "p-1"}
	assert.Equal(t, map[string]any{"productId": "p-1"}, partition.Attributes())
	assert.Equal(t, "p-1", partition.String())
}
