// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package category

// Defaults is the descriptive content used to complete an exercise of a
// given category.
type Defaults struct {
	// Muscles is the default muscle-group list.
	Muscles string

	// Function describes the movement function, appended to the anatomy text.
	Function string

	// Safety holds up to three safety cues.
	Safety []string

	Regress  string
	Progress string

	// Dosage is the sets/reps/rest template.
	Dosage string
}

// taxonomy is indexed by Category. Every entry must be populated; see
// TestTaxonomyComplete.
var taxonomy = [numCategories]Defaults{
	Core: {
		Muscles:  "Abdominaux, obliques, lombaires",
		Function: "anti-extension et stabilite",
		Safety: []string{
			"Garder une colonne neutre",
			"Respirer sans bloquer",
			"Eviter la compensation lombaire",
		},
		Regress:  "Reduire la duree ou surelever les appuis.",
		Progress: "Augmenter la duree ou ajouter une instabilite.",
		Dosage:   "3-4 x 20-40s • repos 45-60s • focus gainage",
	},
	Squat: {
		Muscles:  "Quadriceps, fessiers, adducteurs",
		Function: "extension du genou et stabilite",
		Safety: []string{
			"Genoux alignes avec les orteils",
			"Buste gaine",
			"Amplitude progressive",
		},
		Regress:  "Limiter l'amplitude ou utiliser un support.",
		Progress: "Ajouter une charge ou tempo excentrique.",
		Dosage:   "3-5 x 8-12 reps • repos 60-90s • focus controle",
	},
	Hinge: {
		Muscles:  "Ischio-jambiers, fessiers, lombaires",
		Function: "extension de hanche",
		Safety: []string{
			"Charniere hanche dominante",
			"Dos long et neutre",
			"Charge proche du corps",
		},
		Regress:  "Diminuer la charge et ralentir le tempo.",
		Progress: "Ajouter une charge ou augmenter l'amplitude.",
		Dosage:   "3-5 x 8-10 reps • repos 60-90s • focus charniere",
	},
	Push: {
		Muscles:  "Pectoraux, deltoides, triceps",
		Function: "poussee horizontale",
		Safety: []string{
			"Epaules basses et stables",
			"Coudes a 30-45 degres",
			"Tronc engage",
		},
		Regress:  "Surelever les mains ou reduire la charge.",
		Progress: "Augmenter la charge ou passer au sol.",
		Dosage:   "3-5 x 8-12 reps • repos 60-90s • focus alignement",
	},
	Pull: {
		Muscles:  "Dos, biceps, deltoides posterieurs",
		Function: "tirage horizontal",
		Safety: []string{
			"Poitrine ouverte",
			"Epaules loin des oreilles",
			"Controle du retour",
		},
		Regress:  "Utiliser un elastique plus leger.",
		Progress: "Ajouter une charge ou un tempo lent.",
		Dosage:   "3-5 x 8-12 reps • repos 60-90s • focus scapulas",
	},
	Plyo: {
		Muscles:  "Quadriceps, fessiers, mollets",
		Function: "triple extension et reactivite",
		Safety: []string{
			"Atterrissage souple",
			"Genoux stables",
			"Repos suffisant entre les series",
		},
		Regress:  "Remplacer par un saut plus bas ou marche.",
		Progress: "Augmenter la hauteur ou l'intensite.",
		Dosage:   "3-5 x 6-8 reps • repos 90-120s • focus explosivite",
	},
	Functional: {
		Muscles:  "Chaine anterieure et posterieure",
		Function: "stabilite globale",
		Safety: []string{
			"Mouvement controle",
			"Amplitude adaptee",
			"Respiration reguliere",
		},
		Regress:  "Simplifier la coordination du mouvement.",
		Progress: "Augmenter la complexite ou la charge.",
		Dosage:   "3-4 x 8-12 reps • repos 60-90s • focus fluide",
	},
}

// maxSafety is the number of safety cues copied onto a completed exercise.
const maxSafety = 3

// Lookup returns the defaults for c. Invalid categories resolve to
// Functional. The returned Safety slice is a copy of at most three cues and
// may be modified by the caller.
func Lookup(c Category) Defaults {
	if !c.Valid() {
		c = Functional
	}
	d := taxonomy[c]
	n := min(len(d.Safety), maxSafety)
	d.Safety = append([]string(nil), d.Safety[:n]...)
	return d
}
