package content

import "folio-cli/internal/model"

// Catalog is the in-memory content provider handed to the UI. Projects keep
// their editorial order; slug lookup is memoized so current-project
// detection on every route change stays a map hit.
type Catalog struct {
	projects []model.Project
	about    model.AboutInfo
	bySlug   map[string]int
}

func NewCatalog(projects []model.Project, about model.AboutInfo) *Catalog {
	c := &Catalog{
		projects: projects,
		about:    about,
		bySlug:   make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		c.bySlug[p.Slug] = i
	}
	return c
}

// ListProjects returns the ordered project sequence.
func (c *Catalog) ListProjects() []model.Project { return c.projects }

// GetProject returns the project with the given slug, or ErrNotFound.
func (c *Catalog) GetProject(slug string) (model.Project, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return c.projects[i], nil
}

// IndexOf returns the zero-based position of slug in the project order,
// or -1 when unknown.
func (c *Catalog) IndexOf(slug string) int {
	i, ok := c.bySlug[slug]
	if !ok {
		return -1
	}
	return i
}

// ListSlugs returns project slugs in editorial order.
func (c *Catalog) ListSlugs() []string {
	out := make([]string, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.Slug
	}
	return out
}

func (c *Catalog) AboutInfo() model.AboutInfo { return c.about }

func (c *Catalog) Len() int { return len(c.projects) }
