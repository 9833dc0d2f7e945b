// Package product holds the product record, its composite key and the
// partial-attribute mutation applied by updates.
package product

import (
	"fmt"

	"products-backend/pkg/numeric"

	"github.com/shopspring/decimal"
)

// Attribute names as stored in the table.
const (
	AttrProductID    = "productId"
	AttrCategory     = "category"
	AttrProductName  = "productName"
	AttrProductPrice = "productPrice"
	AttrDescription  = "description"
	AttrStock        = "stock"
)

// Product is a product record. The four required fields are pointers so the
// schema check tests presence rather than zero values. Attributes carries any
// extension attributes submitted alongside them.
type Product struct {
	ProductID    *string          `json:"productId" validate:"required"`
	Category     *string          `json:"category" validate:"required"`
	ProductName  *string          `json:"productName" validate:"required"`
	ProductPrice *decimal.Decimal `json:"productPrice" validate:"required"`
	Attributes   map[string]any   `json:"-"`
}

// RequiredFields lists the attributes every record must carry, in the order
// they are reported when missing.
var RequiredFields = []string{AttrProductID, AttrCategory, AttrProductName, AttrProductPrice}

// FromPayload builds a Product from a decoded request payload. Absent required
// keys are reported together before any value is inspected. Required values
// are then type checked in RequiredFields order; productPrice must be a JSON
// number. Every other key is kept as an extension attribute.
func FromPayload(payload map[string]any) (*Product, error) {
	var missing []string
	for _, name := range RequiredFields {
		if _, ok := payload[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	id, err := stringField(AttrProductID, payload[AttrProductID])
	if err != nil {
		return nil, err
	}
	category, err := stringField(AttrCategory, payload[AttrCategory])
	if err != nil {
		return nil, err
	}
	name, err := stringField(AttrProductName, payload[AttrProductName])
	if err != nil {
		return nil, err
	}
	price, err := numberField(AttrProductPrice, payload[AttrProductPrice])
	if err != nil {
		return nil, err
	}

	p := &Product{
		ProductID:    &id,
		Category:     &category,
		ProductName:  &name,
		ProductPrice: &price,
		Attributes:   make(map[string]any, len(payload)),
	}
	for key, value := range payload {
		switch key {
		case AttrProductID, AttrCategory, AttrProductName, AttrProductPrice:
		default:
			p.Attributes[key] = value
		}
	}

	return p, nil
}

// Key returns the composite key of the record. Call after Validate.
func (p *Product) Key() Key {
	return Key{ProductID: deref(p.ProductID), Category: deref(p.Category)}
}

// Item returns the full record as an attribute map: the required fields plus
// every extension attribute, untouched.
func (p *Product) Item() map[string]any {
	item := make(map[string]any, len(p.Attributes)+4)
	for k, v := range p.Attributes {
		item[k] = v
	}
	if p.ProductID != nil {
		item[AttrProductID] = *p.ProductID
	}
	if p.Category != nil {
		item[AttrCategory] = *p.Category
	}
	if p.ProductName != nil {
		item[AttrProductName] = *p.ProductName
	}
	if p.ProductPrice != nil {
		item[AttrProductPrice] = *p.ProductPrice
	}
	return item
}

// Key addresses a record. ProductID is the partition key; Category completes
// the composite key used by reads and updates and is omitted when empty.
type Key struct {
	ProductID string
	Category  string
}

// String renders the key for logs.
func (k Key) String() string {
	if k.Category == "" {
		return k.ProductID
	}
	return k.ProductID + "/" + k.Category
}

// Attributes returns the key as an attribute map.
func (k Key) Attributes() map[string]any {
	attrs := map[string]any{AttrProductID: k.ProductID}
	if k.Category != "" {
		attrs[AttrCategory] = k.Category
	}
	return attrs
}

func stringField(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &InvalidFieldError{Field: name}
	}
	return s, nil
}

func decimalField(name string, value any) (decimal.Decimal, error) {
	d, err := numeric.ToDecimal(value)
	if err != nil {
		return decimal.Decimal{}, &InvalidFieldError{Field: name, Cause: err}
	}
	return d, nil
}

// numberField accepts only values that were numbers on the wire. Numeric
// strings are rejected so the stored attribute keeps the submitted type.
func numberField(name string, value any) (decimal.Decimal, error) {
	if _, ok := value.(string); ok {
		return decimal.Decimal{}, &InvalidFieldError{Field: name}
	}
	return decimalField(name, value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// InvalidFieldError reports a field whose value has the wrong type.
type InvalidFieldError struct {
	Field string
	Cause error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.Field)
}

func (e *InvalidFieldError) Unwrap() error { return e.Cause }
