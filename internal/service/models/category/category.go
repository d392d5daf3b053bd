package category

import (
	"database/sql/driver"
	"errors"
)

// Category discriminates which catalog a line item belongs to.
type Category string

const (
	CategoryWine   Category = "wine"
	CategoryCoffee Category = "coffee"
)

var ErrUnknownCategory = errors.New("unknown product category")

func (c Category) String() string {
	return string(c)
}

func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

func ParseCategory(s string) (Category, error) {
	switch s {
	case CategoryWine.String():
		return CategoryWine, nil
	case CategoryCoffee.String():
		return CategoryCoffee, nil
	default:
		return "", ErrUnknownCategory
	}
}
