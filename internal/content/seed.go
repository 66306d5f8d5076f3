package content

import (
	"fmt"

	"folio-cli/internal/model"

	"github.com/google/uuid"
)

// Seed is the JSON shape of a content.json import file.
type Seed struct {
	Projects []model.Project `json:"projects"`
	About    model.AboutInfo `json:"about"`
}

// normalizeSeed fills in fields an authored seed file is allowed to omit:
// project ids default to the slug, media ids get generated.
func normalizeSeed(seed *Seed) {
	for i := range seed.Projects {
		p := &seed.Projects[i]
		if p.ID == "" {
			p.ID = p.Slug
		}
		if p.Number == 0 {
			p.Number = i + 1
		}
		for j := range p.Media {
			m := &p.Media[j]
			if m.ID == "" {
				m.ID = uuid.NewString()
			}
			if m.Kind == "" {
				m.Kind = model.MediaKindImage
			}
		}
	}
}

func placeholderMedia(slug string, count int) []model.MediaItem {
	out := make([]model.MediaItem, count)
	for i := range out {
		out[i] = model.MediaItem{
			ID:     fmt.Sprintf("%s-%d", slug, i+1),
			Kind:   model.MediaKindImage,
			URL:    fmt.Sprintf("https://picsum.photos/seed/%s-%d/1200/800", slug, i),
			Alt:    fmt.Sprintf("Image %d", i+1),
			Width:  1200,
			Height: 800,
		}
	}
	return out
}

// DefaultSeed is the built-in catalog used when no content.json exists,
// mirroring the portfolio's launch content.
func DefaultSeed() *Seed {
	return &Seed{
		Projects: []model.Project{
			{
				ID:            "ladakhi-bakers",
				Slug:          "ladakhi-bakers",
				Title:         "Ladakhi Bakers",
				Location:      "India",
				Year:          "2025",
				Category:      model.CategoryProject,
				Number:        1,
				Description:   "A journey through the wood-fired tandoor bakeries of Kashmir and Ladakh, photographed bakery by bakery along the road north.",
				Media:         placeholderMedia("ladakhi-bakers", 17),
				Collaboration: "In collaboration with Ana Gallart",
				Client:        "Personal Project",
				Date:          "Shot between April 12 - May 2",
			},
			{
				ID:          "366-miralls",
				Slug:        "366-miralls",
				Title:       "366 Miralls",
				Location:    "Barcelona",
				Year:        "Ongoing",
				Category:    model.CategoryProject,
				Number:      2,
				Description: "An ongoing daily self-portrait project exploring identity, time, and self-perception through 366 different mirrors across Barcelona.",
				Media:       placeholderMedia("366-miralls", 12),
				Client:      "Personal Project",
			},
			{
				ID:          "morocco",
				Slug:        "morocco",
				Title:       "Moro(cc)o",
				Location:    "Morocco",
				Year:        "2023",
				Category:    model.CategoryTravel,
				Number:      1,
				Description: "A project made for the joy of traveling and taking photos during two short trips in Morocco.",
				Media:       placeholderMedia("morocco", 15),
			},
			{
				ID:          "factory-x-thinking-mu",
				Slug:        "factory-x-thinking-mu",
				Title:       "Factory x Thinking Mu",
				Location:    "India",
				Year:        "2025",
				Category:    model.CategoryCommercial,
				Number:      1,
				Description: "A documentary series on sustainable fashion production in India.",
				Media:       placeholderMedia("factory-thinking-mu", 20),
				Client:      "Thinking Mu",
				Date:        "Shot between April 12 - May 2",
			},
			{
				ID:            "varanasi",
				Slug:          "varanasi",
				Title:         "Two days in Varanasi",
				Location:      "India",
				Year:          "2024",
				Category:      model.CategoryTravel,
				Number:        2,
				Description:   "A brief but intense visual journey through the spiritual heart of India, captured in just two days.",
				Media:         placeholderMedia("varanasi", 14),
				Collaboration: "In collaboration with Marius Uhlig",
				Client:        "Personal Project",
			},
		},
		About: model.AboutInfo{
			Name: "Pep Perez Guarro",
			Bio:  "Pep is based between Paris and Barcelona. His approach to photography and directing is shaped by an exploration of timelessness, texture and authenticity.",
			Email: model.ContactInfo{
				Display: "info@pepperezguarro.com",
				Link:    "mailto:info@pepperezguarro.com",
			},
			Phone: model.ContactInfo{
				Display: "ES +34 681 378 920",
				Link:    "tel:+34681378920",
			},
			Instagram: model.ContactInfo{
				Display: "@pepperezguarro",
				Link:    "https://instagram.com/pepperezguarro",
			},
			Collaborators: []string{
				"ARKET", "COS", "Dunhill", "Farfetch", "H&M", "JW Anderson",
				"KASSL Editions", "PANGAIA", "RIMOWA", "Sandro",
			},
			Publications: []string{
				"T: The New York Times", "Vogue", "WSJ. Magazine", "ZARA",
			},
		},
	}
}
