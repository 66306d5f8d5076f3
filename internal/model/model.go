package model

import (
	"fmt"
	"strings"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

type VideoProvider string

const (
	VideoProviderVimeo   VideoProvider = "vimeo"
	VideoProviderYouTube VideoProvider = "youtube"
)

// MediaItem is one entry in a project's ordered gallery. Kind selects which
// of the type-specific fields are meaningful.
type MediaItem struct {
	ID   string    `json:"id"`
	Kind MediaKind `json:"kind"`

	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	// AspectRatio is width/height; derived from Width/Height when zero.
	AspectRatio  float64 `json:"aspectRatio,omitempty"`
	BlurDataURL  string  `json:"blurDataURL,omitempty"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`

	// Video-only.
	Provider VideoProvider `json:"provider,omitempty"`
	VideoID  string        `json:"videoId,omitempty"`
}

func (m MediaItem) Aspect() float64 {
	if m.AspectRatio > 0 {
		return m.AspectRatio
	}
	if m.Width > 0 && m.Height > 0 {
		return float64(m.Width) / float64(m.Height)
	}
	// Photographs default to 3:2.
	return 1.5
}

type Category string

const (
	CategoryProject    Category = "project"
	CategoryCommercial Category = "commercial"
	CategoryTravel     Category = "travel"
	CategoryEditorial  Category = "editorial"
)

type Project struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Location    string      `json:"location,omitempty"`
	Year        string      `json:"year,omitempty"`
	Category    Category    `json:"category,omitempty"`
	Number      int         `json:"number,omitempty"`
	Description string      `json:"description,omitempty"`
	Media       []MediaItem `json:"media"`

	Collaboration string `json:"collaboration,omitempty"`
	Client        string `json:"client,omitempty"`
	Date          string `json:"date,omitempty"`
}

// FormattedNumber is the human-facing ordinal label: the category prefix
// plus a two-digit number within that category (P01, C03, T02, E01).
func (p Project) FormattedNumber() string {
	prefix := "P"
	switch p.Category {
	case CategoryCommercial:
		prefix = "C"
	case CategoryTravel:
		prefix = "T"
	case CategoryEditorial:
		prefix = "E"
	}
	n := p.Number
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%s%02d", prefix, n)
}

// Meta renders the "Location, Year" line, tolerating either field being empty.
func (p Project) Meta() string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(p.Location) != "" {
		parts = append(parts, strings.TrimSpace(p.Location))
	}
	if strings.TrimSpace(p.Year) != "" {
		parts = append(parts, strings.TrimSpace(p.Year))
	}
	return strings.Join(parts, ", ")
}

type ContactInfo struct {
	Display string `json:"display"`
	Link    string `json:"link"`
}

type AboutInfo struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`

	Email     ContactInfo `json:"email"`
	Phone     ContactInfo `json:"phone"`
	Instagram ContactInfo `json:"instagram"`

	Collaborators []string `json:"collaborators,omitempty"`
	Publications  []string `json:"publications,omitempty"`
}
