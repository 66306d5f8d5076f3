package content

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"folio-cli/internal/model"
)

func TestLoadSeedsDefaultCatalogOnce(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	cat, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatalf("expected built-in seed projects")
	}

	// Second load must read from SQLite, not re-import.
	again, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if again.Len() != cat.Len() {
		t.Fatalf("catalog changed across loads: %d vs %d", again.Len(), cat.Len())
	}
}

func TestLoadImportsSeedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seed := Seed{
		Projects: []model.Project{
			{Slug: "alpha", Title: "Alpha", Media: []model.MediaItem{{URL: "https://example.test/a.jpg"}}},
			{Slug: "beta", Title: "Beta"},
		},
		About: model.AboutInfo{Name: "Tester"},
	}
	raw, _ := json.Marshal(seed)
	if err := os.WriteFile(filepath.Join(dir, "content.json"), raw, 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cat, err := Store{Dir: dir}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cat.ListSlugs(); len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Fatalf("slugs = %v", got)
	}

	p, err := cat.GetProject("alpha")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if p.ID != "alpha" {
		t.Fatalf("project id should default to slug; got %q", p.ID)
	}
	if len(p.Media) != 1 || p.Media[0].ID == "" {
		t.Fatalf("media id should be generated; got %+v", p.Media)
	}
	if p.Media[0].Kind != model.MediaKindImage {
		t.Fatalf("media kind should default to image; got %q", p.Media[0].Kind)
	}
	if cat.AboutInfo().Name != "Tester" {
		t.Fatalf("about = %+v", cat.AboutInfo())
	}
}

func TestGetProjectUnknownSlug(t *testing.T) {
	t.Parallel()

	cat := NewCatalog([]model.Project{{Slug: "known"}}, model.AboutInfo{})
	if _, err := cat.GetProject("unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound; got %v", err)
	}
	if i := cat.IndexOf("unknown"); i != -1 {
		t.Fatalf("IndexOf unknown = %d; want -1", i)
	}
	if i := cat.IndexOf("known"); i != 0 {
		t.Fatalf("IndexOf known = %d; want 0", i)
	}
}

func TestImportReplacesCatalog(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()
	if _, err := s.Load(ctx); err != nil {
		t.Fatalf("initial Load: %v", err)
	}

	err := s.Import(ctx, &Seed{
		Projects: []model.Project{{Slug: "only", Title: "Only"}},
		About:    model.AboutInfo{Name: "Replaced"},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	cat, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load after import: %v", err)
	}
	if cat.Len() != 1 || cat.ListSlugs()[0] != "only" {
		t.Fatalf("catalog after import = %v", cat.ListSlugs())
	}
	if cat.AboutInfo().Name != "Replaced" {
		t.Fatalf("about after import = %+v", cat.AboutInfo())
	}
}
