package models

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Category is the spending category of a transaction or budget.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryHousing       Category = "Housing"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories is the fixed enumeration of categories, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOther,
}

// Valid reports whether the category is part of the enumeration.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

func (c Category) validate() error {
	if c == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}

	if !c.Valid() {
		names := make([]string, 0, len(Categories))
		for _, category := range Categories {
			names = append(names, string(category))
		}
		return fmt.Errorf("%w: category '%s' is not one of %s", ErrValidation, c, strings.Join(names, ", "))
	}

	return nil
}
