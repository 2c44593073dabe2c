// Package pets holds adoptable pet listings and the code that loads and
// searches them.
package pets

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pawview/pawview/pkg/imageview"
)

// Species of a listed animal.
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesRabbit  Species = "rabbit"
	SpeciesBird    Species = "bird"
	SpeciesOther   Species = "other"
	SpeciesUnknown Species = ""
)

// Pet is one adoption listing.
type Pet struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Species     Species   `json:"species" yaml:"species"`
	Breed       string    `json:"breed,omitempty" yaml:"breed,omitempty"`
	AgeMonths   int       `json:"age_months,omitempty" yaml:"age_months,omitempty"`
	Sex         string    `json:"sex,omitempty" yaml:"sex,omitempty"`
	Size        string    `json:"size,omitempty" yaml:"size,omitempty"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty" yaml:"photo_url,omitempty"`
	PhotoPath   string    `json:"photo_path,omitempty" yaml:"photo_path,omitempty"`
	ListedAt    time.Time `json:"listed_at,omitempty" yaml:"listed_at,omitempty"`
}

// Photo returns the image source for the listing. Remote photos win over
// bundled assets; a listing without either has no source.
func (p Pet) Photo() imageview.Source {
	switch {
	case strings.TrimSpace(p.PhotoURL) != "":
		return imageview.Remote(p.PhotoURL)
	case strings.TrimSpace(p.PhotoPath) != "":
		return imageview.Local(p.PhotoPath)
	default:
		return imageview.None
	}
}

// Age renders AgeMonths for humans: "8 months", "1 year", "3 years".
func (p Pet) Age() string {
	switch {
	case p.AgeMonths <= 0:
		return "age unknown"
	case p.AgeMonths == 1:
		return "1 month"
	case p.AgeMonths < 12:
		return fmt.Sprintf("%d months", p.AgeMonths)
	case p.AgeMonths < 24:
		return "1 year"
	default:
		return fmt.Sprintf("%d years", p.AgeMonths/12)
	}
}

// Listed describes how long ago the pet was listed.
func (p Pet) Listed() string {
	if p.ListedAt.IsZero() {
		return ""
	}
	return "listed " + humanize.Time(p.ListedAt)
}

// Summary is a one-line description used in lists.
func (p Pet) Summary() string {
	parts := []string{}
	if p.Breed != "" {
		parts = append(parts, p.Breed)
	} else if p.Species != SpeciesUnknown {
		parts = append(parts, string(p.Species))
	}
	parts = append(parts, p.Age())
	if p.Location != "" {
		parts = append(parts, p.Location)
	}
	return strings.Join(parts, " • ")
}
