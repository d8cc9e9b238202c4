// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Default values an exercise carries before any line sets them.
const (
	DefaultLevel     = "Intermediaire"
	DefaultEquipment = "Aucun"
)

// Bullet is the separator used in derived text (subtitles, anatomy, dosage).
const Bullet = "•"

// Exercise is one named movement with its descriptive metadata.
type Exercise struct {
	// Code is the canonical identifier, e.g. "S1-01".
	Code string `json:"code" yaml:"code"`

	// Title is the exercise name as written after the header colon.
	Title string `json:"title" yaml:"title"`

	// Level is one of "Debutant", "Intermediaire", "Avance" (free text in
	// source documents, "Intermediaire" when absent).
	Level string `json:"level" yaml:"level"`

	// Equipment lists the required material ("Aucun" when absent).
	Equipment string `json:"equipment" yaml:"equipment"`

	// Muscles is the comma-separated list of targeted muscle groups.
	Muscles string `json:"muscles" yaml:"muscles"`

	Objective string   `json:"objective" yaml:"objective"`
	Anatomy   string   `json:"anatomy" yaml:"anatomy"`
	KeyPoints []string `json:"key_points" yaml:"key_points"`
	Safety    []string `json:"safety" yaml:"safety"`
	Regress   string   `json:"regress" yaml:"regress"`
	Progress  string   `json:"progress" yaml:"progress"`
	Dosage    string   `json:"dosage" yaml:"dosage"`

	// Image is the public path of the illustration, "/images/<CODE>.jpg".
	Image string `json:"image" yaml:"image"`
}

// NewExercise returns an exercise with the given code and title and every
// other field at its default.
func NewExercise(code, title string) Exercise {
	return Exercise{
		Code:      code,
		Title:     title,
		Level:     DefaultLevel,
		Equipment: DefaultEquipment,
		KeyPoints: []string{},
		Safety:    []string{},
		Image:     ImagePath(code),
	}
}

// ImagePath returns the public path of the illustration for code.
func ImagePath(code string) string {
	return "/images/" + code + ".jpg"
}

// Session is a numbered group of exercises for one training day.
type Session struct {
	Num       int        `json:"num" yaml:"num"`
	Title     string     `json:"title" yaml:"title"`
	Subtitle  string     `json:"subtitle" yaml:"subtitle"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// NewSession returns an empty session with its subtitle derived from num and title.
func NewSession(num int, title string) Session {
	return Session{
		Num:       num,
		Title:     title,
		Subtitle:  Subtitle(num, title),
		Exercises: []Exercise{},
	}
}

// Subtitle formats the display subtitle of a session.
func Subtitle(num int, title string) string {
	return fmt.Sprintf("Seance %d %s %s", num, Bullet, title)
}

// Meta describes where a dataset came from.
type Meta struct {
	IsMock bool `json:"is_mock" yaml:"is_mock"`

	// Warning is set on demonstration data only.
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`

	// SourceDocs lists the base names of the parsed documents, in input order.
	SourceDocs []string `json:"source_docs,omitempty" yaml:"source_docs,omitempty"`
}

// Dataset is the document consumed by the front-end application.
type Dataset struct {
	Meta     Meta      `json:"meta" yaml:"meta"`
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

// ExerciseCount returns the number of exercises across all sessions.
func (d Dataset) ExerciseCount() int {
	n := 0
	for _, s := range d.Sessions {
		n += len(s.Exercises)
	}
	return n
}

// Paragraph is one body paragraph of a source document.
type Paragraph struct {
	// Text is the paragraph text; line breaks inside the paragraph are "\n".
	Text string

	// Images are the references of the embedded images, in document order.
	Images []string
}
