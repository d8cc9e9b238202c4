// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mock builds the demonstration dataset written when no source
// document is available.
package mock

import (
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// Warning is the human-readable notice carried by demonstration data.
const Warning = "Donnees de demonstration actives (DOCX manquants)."

type exerciseSeed struct {
	code, title, level, equipment, muscles string
	keyPoints                              []string
}

type sessionSeed struct {
	num       int
	title     string
	exercises []exerciseSeed
}

var seeds = []sessionSeed{
	{
		num:   1,
		title: "Gainage & posture",
		exercises: []exerciseSeed{
			{"S1-01", "Planche coudes", "Intermediaire", "Tapis", "Abdominaux, lombaires", []string{"Alignement", "Respiration", "Controle"}},
			{"S1-02", "Dead Bug", "Debutant", "Aucun", "Abdos profonds, flechisseurs de hanche", []string{"Dos plaque", "Mouvement lent", "Souffle"}},
			{"S1-03", "Bird Dog", "Debutant", "Aucun", "Lombaires, fessiers, epaules", []string{"Stabilite", "Extension opposee", "Regard sol"}},
			{"S1-04", "Pont fessier", "Debutant", "Tapis", "Fessiers, ischios", []string{"Pousser talons", "Bassin neutre", "Controle"}},
			{"S1-05", "Squat poids du corps", "Debutant", "Aucun", "Quadriceps, fessiers", []string{"Genoux alignes", "Poitrine ouverte", "Pied stable"}},
		},
	},
	{
		num:   2,
		title: "Poussee & tirage",
		exercises: []exerciseSeed{
			{"S2-01", "Pompes inclinees", "Intermediaire", "Banc", "Pectoraux, triceps", []string{"Gainage", "Coudes 45deg", "Controle"}},
			{"S2-02", "Rowing elastique", "Intermediaire", "Elastique", "Dos, biceps", []string{"Epaules basses", "Poitrine ouverte", "Retour lent"}},
			{"S2-03", "Fentes avant", "Intermediaire", "Aucun", "Quadriceps, fessiers", []string{"Genou stable", "Buste droit", "Pied ancre"}},
			{"S2-04", "Burpees controles", "Avance", "Aucun", "Corps entier", []string{"Rythme propre", "Atterrissage souple", "Respiration"}},
		},
	},
}

// Build returns the demonstration dataset. Its exercises carry only the
// fields given literally; the caller runs field completion on it exactly as
// on parsed data.
func Build() types.Dataset {
	sessions := make([]types.Session, 0, len(seeds))
	for _, s := range seeds {
		session := types.NewSession(s.num, s.title)
		for _, e := range s.exercises {
			ex := types.NewExercise(e.code, e.title)
			ex.Level = e.level
			ex.Equipment = e.equipment
			ex.Muscles = e.muscles
			ex.KeyPoints = append([]string(nil), e.keyPoints...)
			session.Exercises = append(session.Exercises, ex)
		}
		sessions = append(sessions, session)
	}
	return types.Dataset{
		Meta: types.Meta{
			IsMock:  true,
			Warning: Warning,
		},
		Sessions: sessions,
	}
}
