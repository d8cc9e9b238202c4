// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/eps-dataset/internal/imaging"
	"github.com/pdiddy/eps-dataset/internal/overrides"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// fakeDocument implements Document for testing. Each entry of paragraphs is
// one paragraph; images maps references to raw bytes.
type fakeDocument struct {
	name       string
	paragraphs []types.Paragraph
	images     map[string][]byte
}

func (f *fakeDocument) Name() string                  { return f.name }
func (f *fakeDocument) Paragraphs() []types.Paragraph { return f.paragraphs }

func (f *fakeDocument) Image(ref string) ([]byte, error) {
	blob, ok := f.images[ref]
	if !ok {
		return nil, errors.New("unknown image " + ref)
	}
	return blob, nil
}

func textDoc(name string, lines ...string) *fakeDocument {
	doc := &fakeDocument{name: name}
	for _, l := range lines {
		doc.paragraphs = append(doc.paragraphs, types.Paragraph{Text: l})
	}
	return doc
}

func pngBlob(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func parseDocs(t *testing.T, docs ...Document) Result {
	t.Helper()
	res, err := New(Config{}).Parse(docs)
	require.NoError(t, err)
	return res
}

func TestParse_SessionsAndExercises(t *testing.T) {
	doc := textDoc("EPS-1.docx",
		"Programme EPS",
		"SESSION 1 : Gainage & posture",
		"S1-01 : Planche coudes",
		"Muscles : Abdominaux, lombaires",
		"Niveau : Debutant",
		"Matériel : Tapis",
		"Points clés : Alignement • Respiration ; Controle",
		"Une phrase libre qui ne compte pas.",
		"S1-02 : Dead Bug",
	)
	res := parseDocs(t, doc)

	require.Equal(t, 1, res.SessionCount())
	assert.Equal(t, 2, res.ExerciseCount())
	assert.Equal(t, 0, res.ImageCount())
	assert.False(t, res.Dataset.Meta.IsMock)
	assert.Equal(t, []string{"EPS-1.docx"}, res.Dataset.Meta.SourceDocs)

	s := res.Dataset.Sessions[0]
	assert.Equal(t, 1, s.Num)
	assert.Equal(t, "Gainage & posture", s.Title)
	assert.Equal(t, "Seance 1 • Gainage & posture", s.Subtitle)

	ex := s.Exercises[0]
	assert.Equal(t, "S1-01", ex.Code)
	assert.Equal(t, "Planche coudes", ex.Title)
	assert.Equal(t, "Abdominaux, lombaires", ex.Muscles)
	assert.Equal(t, "Debutant", ex.Level)
	assert.Equal(t, "Tapis", ex.Equipment)
	assert.Equal(t, []string{"Alignement", "Respiration", "Controle"}, ex.KeyPoints)
	assert.Equal(t, "/images/S1-01.jpg", ex.Image)

	// Fields absent from the document are completed.
	second := s.Exercises[1]
	assert.Equal(t, "Intermediaire", second.Level)
	assert.Equal(t, "Aucun", second.Equipment)
	assert.Equal(t, "Abdominaux, obliques, lombaires", second.Muscles)
	assert.NotEmpty(t, second.Safety)
}

func TestParse_FieldLineRouting(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, ex types.Exercise)
	}{
		{
			name: "key points split",
			line: "Points cles: Alignement, Respiration",
			check: func(t *testing.T, ex types.Exercise) {
				assert.Equal(t, []string{"Alignement", "Respiration"}, ex.KeyPoints)
			},
		},
		{
			name: "empty level falls back",
			line: "Niveau: ",
			check: func(t *testing.T, ex types.Exercise) {
				assert.Equal(t, "Intermediaire", ex.Level)
			},
		},
		{
			name: "empty equipment falls back",
			line: "Materiel :",
			check: func(t *testing.T, ex types.Exercise) {
				assert.Equal(t, "Aucun", ex.Equipment)
			},
		},
		{
			name: "accented uppercase prefix",
			line: "MATÉRIEL : Élastique",
			check: func(t *testing.T, ex types.Exercise) {
				assert.Equal(t, "Élastique", ex.Equipment)
			},
		},
		{
			name: "muscles without colon",
			line: "Muscles sollicités",
			check: func(t *testing.T, ex types.Exercise) {
				// Empty muscles are completed from the title category.
				assert.Equal(t, "Chaine anterieure et posterieure", ex.Muscles)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseDocs(t, textDoc("d.docx", "SESSION 1 : A", "S1-01 : Marche", tt.line))
			require.Equal(t, 1, res.ExerciseCount())
			tt.check(t, res.Dataset.Sessions[0].Exercises[0])
		})
	}
}

func TestParse_CodeNormalization(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx",
		"SESSION 1 : A",
		"s1 - 1 : Premier",
		"S1–2: Deuxieme",
		"S1 — 3 :Troisieme",
	))
	var codes []string
	for _, ex := range res.Dataset.Sessions[0].Exercises {
		codes = append(codes, ex.Code)
	}
	assert.Equal(t, []string{"S1-1", "S1-2", "S1-3"}, codes)
}

func TestParse_SessionOrdering(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx",
		"SESSION 2 : Deux",
		"S2-01 : Pompes",
		"SESSION 1 : Un",
		"S1-01 : Planche",
	))
	require.Equal(t, 2, res.SessionCount())
	assert.Equal(t, 1, res.Dataset.Sessions[0].Num)
	assert.Equal(t, 2, res.Dataset.Sessions[1].Num)
	assert.Equal(t, "S1-01", res.Dataset.Sessions[0].Exercises[0].Code)
}

func TestParse_ExerciseBeforeSession(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx", "S3-01: Foo", "Muscles: Dos"))
	require.Equal(t, 1, res.SessionCount())

	s := res.Dataset.Sessions[0]
	assert.Equal(t, 3, s.Num)
	assert.Equal(t, "Session 3", s.Title)
	assert.Equal(t, "Seance 3 • Session 3", s.Subtitle)
	require.Len(t, s.Exercises, 1)
	assert.Equal(t, "S3-01", s.Exercises[0].Code)
	assert.Equal(t, "Dos", s.Exercises[0].Muscles)
}

func TestParse_RepeatedSessionHeader(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx",
		"SESSION 1 : Premier titre",
		"S1-01 : A",
		"SESSION 2 : Autre",
		"S2-01 : B",
		"SESSION 1 : Renomme",
		"S1-02 : C",
	))
	require.Equal(t, 2, res.SessionCount())
	s1 := res.Dataset.Sessions[0]
	assert.Equal(t, "Premier titre", s1.Title)
	require.Len(t, s1.Exercises, 2)
	assert.Equal(t, "S1-02", s1.Exercises[1].Code)
}

func TestParse_SessionHeaderClosesExercise(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx",
		"SESSION 1 : A",
		"S1-01 : Planche",
		"SESSION 2 : B",
		"Muscles : Ignore",
	))
	assert.Equal(t, "Abdominaux, obliques, lombaires", res.Dataset.Sessions[0].Exercises[0].Muscles)
	assert.Empty(t, res.Dataset.Sessions[1].Exercises)
	assert.NotNil(t, res.Dataset.Sessions[1].Exercises)
}

func TestParse_MultiLineParagraph(t *testing.T) {
	doc := &fakeDocument{name: "d.docx", paragraphs: []types.Paragraph{
		{Text: "SESSION 1 : A\nS1-01 : Squat\n  Muscles : Quadriceps  \n\n"},
	}}
	res := parseDocs(t, doc)
	require.Equal(t, 1, res.ExerciseCount())
	assert.Equal(t, "Quadriceps", res.Dataset.Sessions[0].Exercises[0].Muscles)
}

func TestParse_NonBreakingSpaces(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx", "SESSION\u00a01\u00a0: Gainage", "S1-01\u00a0: Planche"))
	require.Equal(t, 1, res.SessionCount())
	assert.Equal(t, "Gainage", res.Dataset.Sessions[0].Title)
	assert.Equal(t, "Planche", res.Dataset.Sessions[0].Exercises[0].Title)
}

func TestParse_StateCarriesAcrossDocuments(t *testing.T) {
	res := parseDocs(t,
		textDoc("EPS-1.docx", "SESSION 1 : A", "S1-01 : Planche"),
		textDoc("EPS-2.docx", "Muscles : Abdos", "S1-02 : Pont"),
	)
	assert.Equal(t, []string{"EPS-1.docx", "EPS-2.docx"}, res.Dataset.Meta.SourceDocs)
	exs := res.Dataset.Sessions[0].Exercises
	require.Len(t, exs, 2)
	assert.Equal(t, "Abdos", exs[0].Muscles)
}

func TestParse_Images(t *testing.T) {
	blob := pngBlob(t)
	doc := &fakeDocument{
		name: "d.docx",
		paragraphs: []types.Paragraph{
			{Images: []string{"orphan"}},
			{Text: "SESSION 1 : A"},
			{Text: "S1-01 : Planche"},
			{Text: "Muscles : Abdos", Images: []string{"img1", "img2"}},
			{Images: []string{"img3"}},
			{Text: "S1-02 : Pont"},
			{Text: "S1-03 : Squat"},
			{Images: []string{"img4"}},
		},
		images: map[string][]byte{"img1": blob, "img2": blob, "img3": blob, "img4": blob},
	}
	res := parseDocs(t, doc)

	require.Equal(t, 2, res.ImageCount())
	assert.Equal(t, "S1-01", res.Images[0].Code)
	assert.Equal(t, "S1-03", res.Images[1].Code)

	decoded, format, err := image.Decode(bytes.NewReader(res.Images[0].JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 2, decoded.Bounds().Dx())
}

func TestParse_ImageSameParagraphAsHeader(t *testing.T) {
	doc := &fakeDocument{
		name:       "d.docx",
		paragraphs: []types.Paragraph{{Text: "S1-01 : Planche", Images: []string{"img"}}},
		images:     map[string][]byte{"img": pngBlob(t)},
	}
	res := parseDocs(t, doc)
	require.Equal(t, 1, res.ImageCount())
	assert.Equal(t, "S1-01", res.Images[0].Code)
}

func TestParse_SessionHeaderDropsPendingImage(t *testing.T) {
	doc := &fakeDocument{
		name: "d.docx",
		paragraphs: []types.Paragraph{
			{Text: "S1-01 : Planche"},
			{Text: "SESSION 2 : B"},
			{Images: []string{"img"}},
		},
		images: map[string][]byte{"img": pngBlob(t)},
	}
	res := parseDocs(t, doc)
	assert.Zero(t, res.ImageCount())
}

func TestParse_UnsupportedImageIsFatal(t *testing.T) {
	doc := &fakeDocument{
		name:       "d.docx",
		paragraphs: []types.Paragraph{{Text: "S1-01 : Planche"}, {Images: []string{"emf"}}},
		images:     map[string][]byte{"emf": []byte("\x01\x00\x00\x00EMF")},
	}
	_, err := New(Config{}).Parse([]Document{doc})
	require.Error(t, err)
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "d.docx")
}

func TestParse_MissingImageIsFatal(t *testing.T) {
	doc := &fakeDocument{
		name:       "d.docx",
		paragraphs: []types.Paragraph{{Text: "S1-01 : Planche"}, {Images: []string{"gone"}}},
	}
	_, err := New(Config{}).Parse([]Document{doc})
	assert.ErrorContains(t, err, "unknown image gone")
}

func TestParse_AppliesOverridesBeforeCompletion(t *testing.T) {
	set, err := overrides.Parse([]byte("S1-01:\n  dosage: 2 x 30s\n"))
	require.NoError(t, err)

	res, err := New(Config{Overrides: set}).Parse([]Document{textDoc("d.docx", "S1-01 : Planche")})
	require.NoError(t, err)

	ex := res.Dataset.Sessions[0].Exercises[0]
	assert.Equal(t, "2 x 30s", ex.Dosage)
	assert.Equal(t, "Reduire la duree ou surelever les appuis.", ex.Regress)
}

func TestParse_NoDocuments(t *testing.T) {
	res := parseDocs(t)
	assert.NotNil(t, res.Dataset.Sessions)
	assert.Zero(t, res.SessionCount())
}

func TestParse_Totality(t *testing.T) {
	res := parseDocs(t, textDoc("d.docx",
		"S1-01 : Planche", "S1-02 : Squat", "S2-01 : Tirage", "S2-02 : Inconnu",
		"Points : , ;",
	))
	for _, s := range res.Dataset.Sessions {
		for _, ex := range s.Exercises {
			t.Run(ex.Code, func(t *testing.T) {
				for _, v := range []string{ex.Title, ex.Level, ex.Equipment, ex.Muscles, ex.Objective,
					ex.Anatomy, ex.Regress, ex.Progress, ex.Dosage, ex.Image} {
					assert.NotEmpty(t, v)
				}
				assert.NotEmpty(t, ex.KeyPoints)
				assert.NotEmpty(t, ex.Safety)
			})
		}
	}
}
