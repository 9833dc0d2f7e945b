package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoChanges is returned when an update names none of the mutable fields.
var ErrNoChanges = errors.New("no update fields provided")

// Changes is the set of mutable attributes an update supplies. Nil fields are
// left untouched by the update.
type Changes struct {
	ProductName  *string
	ProductPrice *decimal.Decimal
	Description  *string
	Stock        *decimal.Decimal
}

// ChangesFromPayload picks the mutable attributes out of an update body.
// Unrecognized keys are ignored.
func ChangesFromPayload(payload map[string]any) (Changes, error) {
	var c Changes

	if v, ok := payload[AttrProductName]; ok {
		s, err := stringField(AttrProductName, v)
		if err != nil {
			return Changes{}, err
		}
		c.ProductName = &s
	}
	if v, ok := payload[AttrProductPrice]; ok {
		d, err := decimalField(AttrProductPrice, v)
		if err != nil {
			return Changes{}, err
		}
		c.ProductPrice = &d
	}
	if v, ok := payload[AttrDescription]; ok {
		s, err := stringField(AttrDescription, v)
		if err != nil {
			return Changes{}, err
		}
		c.Description = &s
	}
	if v, ok := payload[AttrStock]; ok {
		d, err := decimalField(AttrStock, v)
		if err != nil {
			return Changes{}, err
		}
		c.Stock = &d
	}

	return c, nil
}

// IsEmpty reports whether no mutable attribute was supplied.
func (c Changes) IsEmpty() bool {
	return c.ProductName == nil && c.ProductPrice == nil && c.Description == nil && c.Stock == nil
}

// Assignment is one "alias = placeholder" clause of an update.
type Assignment struct {
	Attribute   string
	Alias       string
	Placeholder string
	Value       any
}

// UpdateSet is a SET mutation over a fixed alias per attribute, so attribute
// names never collide with reserved words.
type UpdateSet struct {
	Assignments []Assignment
}

// BuildUpdateSet turns c into an UpdateSet, in the order name, price,
// description, stock. It returns ErrNoChanges when c is empty.
func BuildUpdateSet(c Changes) (UpdateSet, error) {
	var set UpdateSet

	if c.ProductName != nil {
		set.add(AttrProductName, "#N", ":name", *c.ProductName)
	}
	if c.ProductPrice != nil {
		set.add(AttrProductPrice, "#P", ":price", *c.ProductPrice)
	}
	if c.Description != nil {
		set.add(AttrDescription, "#D", ":desc", *c.Description)
	}
	if c.Stock != nil {
		set.add(AttrStock, "#S", ":stock", *c.Stock)
	}

	if len(set.Assignments) == 0 {
		return UpdateSet{}, ErrNoChanges
	}
	return set, nil
}

func (s *UpdateSet) add(attr, alias, placeholder string, value any) {
	s.Assignments = append(s.Assignments, Assignment{
		Attribute:   attr,
		Alias:       alias,
		Placeholder: placeholder,
		Value:       value,
	})
}

// Expression renders the update expression, e.g. "SET #N = :name, #S = :stock".
func (s UpdateSet) Expression() string {
	parts := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		parts = append(parts, a.Alias+" = "+a.Placeholder)
	}
	return "SET " + strings.Join(parts, ", ")
}

// Names maps each alias to its attribute name.
func (s UpdateSet) Names() map[string]string {
	names := make(map[string]string, len(s.Assignments))
	for _, a := range s.Assignments {
		names[a.Alias] = a.Attribute
	}
	return names
}

// Values maps each placeholder to its value.
func (s UpdateSet) Values() map[string]any {
	values := make(map[string]any, len(s.Assignments))
	for _, a := range s.Assignments {
		values[a.Placeholder] = a.Value
	}
	return values
}

// Attributes maps each updated attribute name to its new value.
func (s UpdateSet) Attributes() map[string]any {
	attrs := make(map[string]any, len(s.Assignments))
	for _, a := range s.Assignments {
		attrs[a.Attribute] = a.Value
	}
	return attrs
}
