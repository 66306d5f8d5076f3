package model

import "testing"

func TestFormattedNumber(t *testing.T) {
	cases := []struct {
		category Category
		number   int
		want     string
	}{
		{CategoryProject, 1, "P01"},
		{CategoryCommercial, 3, "C03"},
		{CategoryTravel, 12, "T12"},
		{CategoryEditorial, 7, "E07"},
		{"", 2, "P02"}, // unset category falls back to the project prefix
		{"", 0, "P01"}, // numbers start at 1
	}
	for _, c := range cases {
		p := Project{Category: c.category, Number: c.number}
		if got := p.FormattedNumber(); got != c.want {
			t.Fatalf("FormattedNumber(%q, %d) = %q; want %q", c.category, c.number, got, c.want)
		}
	}
}

func TestProjectMeta(t *testing.T) {
	if got := (Project{Location: "India", Year: "2025"}).Meta(); got != "India, 2025" {
		t.Fatalf("meta = %q", got)
	}
	if got := (Project{Location: "Barcelona"}).Meta(); got != "Barcelona" {
		t.Fatalf("meta without year = %q", got)
	}
	if got := (Project{Year: "Ongoing"}).Meta(); got != "Ongoing" {
		t.Fatalf("meta without location = %q", got)
	}
	if got := (Project{}).Meta(); got != "" {
		t.Fatalf("empty meta = %q", got)
	}
}

func TestMediaAspect(t *testing.T) {
	if got := (MediaItem{Width: 1200, Height: 800}).Aspect(); got != 1.5 {
		t.Fatalf("aspect from dimensions = %v", got)
	}
	if got := (MediaItem{AspectRatio: 1.777}).Aspect(); got != 1.777 {
		t.Fatalf("explicit aspect = %v", got)
	}
	if got := (MediaItem{}).Aspect(); got != 1.5 {
		t.Fatalf("default aspect = %v", got)
	}
}
