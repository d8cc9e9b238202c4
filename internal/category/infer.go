// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package category

import (
	"strings"

	"github.com/pdiddy/eps-dataset/internal/textnorm"
)

// rule maps a set of folded substrings to a category.
type rule struct {
	category Category
	keywords []string
}

// rules are evaluated in order; the first rule with a matching keyword wins.
var rules = []rule{
	{Core, []string{"gainage", "planche", "core", "dead bug", "hollow", "anti-rotation"}},
	{Squat, []string{"squat", "fente", "pistol", "step", "chaise"}},
	{Hinge, []string{"hinge", "souleve", "soulev", "pont", "hip", "good morning"}},
	{Push, []string{"pousse", "pompe", "developp", "push", "dips"}},
	{Pull, []string{"tirage", "traction", "row", "rame", "pull"}},
	{Plyo, []string{"saut", "plyo", "bond", "jump", "burpee"}},
}

// Infer classifies an exercise from its title and muscle text. Matching is
// case- and accent-insensitive. Unmatched input is Functional.
func Infer(title, muscles string) Category {
	hay := textnorm.Fold(title + " " + muscles)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(hay, k) {
				return r.category
			}
		}
	}
	return Functional
}
