package domain

import (
	"errors"
	"strings"
)

// Category classifies what kind of work a task is.
type Category int

const (
	CategoryWork Category = iota
	CategoryStudy
	CategoryLeisure
)

var ErrInvalidCategory = errors.New("invalid category value")

var categoryNames = map[Category]string{
	CategoryWork:    "work",
	CategoryStudy:   "study",
	CategoryLeisure: "leisure",
}

var categoryValues = map[string]Category{
	"work":    CategoryWork,
	"study":   CategoryStudy,
	"leisure": CategoryLeisure,
}

// ParseCategory creates a Category from a string.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryValues[strings.ToLower(s)]
	if !ok {
		return CategoryWork, ErrInvalidCategory
	}
	return c, nil
}

// String returns the string representation of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the category is a valid value.
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Weight returns the scoring weight used by the prioritizer.
func (c Category) Weight() int {
	switch c {
	case CategoryWork:
		return 15
	case CategoryStudy:
		return 12
	default:
		return 8
	}
}
