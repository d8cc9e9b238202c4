// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package complete fills the descriptive fields an exercise record left
// empty, using the category taxonomy. A field that already has a value is
// never changed, so completing a record twice equals completing it once.
package complete

import (
	"fmt"
	"strings"

	"github.com/pdiddy/eps-dataset/internal/category"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// DefaultKeyPoints are used when an exercise lists no key points.
var DefaultKeyPoints = []string{"Alignement", "Respiration", "Controle"}

// Exercise completes ex in place. The steps run in a fixed order: muscles
// are defaulted first, then the category is computed from the title and the
// (now present) muscles and drives every remaining default.
func Exercise(ex *types.Exercise) {
	if ex.Level == "" {
		ex.Level = types.DefaultLevel
	}
	if ex.Equipment == "" {
		ex.Equipment = types.DefaultEquipment
	}

	if ex.Muscles == "" {
		ex.Muscles = category.Lookup(category.Infer(ex.Title, ex.Muscles)).Muscles
	}

	cat := category.Infer(ex.Title, ex.Muscles)
	d := category.Lookup(cat)

	if ex.Objective == "" {
		ex.Objective = objective(ex.Muscles)
	}
	if ex.Anatomy == "" {
		ex.Anatomy = fmt.Sprintf("%s %s %s", ex.Muscles, types.Bullet, d.Function)
	}
	if len(ex.KeyPoints) == 0 {
		ex.KeyPoints = append([]string(nil), DefaultKeyPoints...)
	}
	if len(ex.Safety) == 0 {
		ex.Safety = d.Safety
	}
	if ex.Regress == "" {
		ex.Regress = d.Regress
	}
	if ex.Progress == "" {
		ex.Progress = d.Progress
	}
	if ex.Dosage == "" {
		ex.Dosage = d.Dosage
	}
	if ex.Image == "" && ex.Code != "" {
		ex.Image = types.ImagePath(ex.Code)
	}
}

// Dataset completes every exercise of every session in ds.
func Dataset(ds *types.Dataset) {
	for i := range ds.Sessions {
		s := &ds.Sessions[i]
		if s.Subtitle == "" {
			s.Subtitle = types.Subtitle(s.Num, s.Title)
		}
		if s.Exercises == nil {
			s.Exercises = []types.Exercise{}
		}
		for j := range s.Exercises {
			Exercise(&s.Exercises[j])
		}
	}
}

// objective derives the objective sentence from the first muscle group.
func objective(muscles string) string {
	main, _, _ := strings.Cut(muscles, ",")
	return fmt.Sprintf("Renforcer %s et ameliorer la stabilite globale.", strings.ToLower(strings.TrimSpace(main)))
}
