// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package category classifies exercises into movement patterns and supplies
// the default descriptive text for each pattern.
package category

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is a movement-pattern class.
type Category int

const (
	Core       Category = iota // core
	Squat                      // squat
	Hinge                      // hinge
	Push                       // push
	Pull                       // pull
	Plyo                       // plyo
	Functional                 // functional
)

const numCategories = int(Functional) + 1

// All returns every category in matching order, Functional last.
func All() []Category {
	all := make([]Category, numCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < numCategories
}
