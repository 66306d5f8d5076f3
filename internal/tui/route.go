package tui

import (
	"fmt"
	"strings"

	"folio-cli/internal/content"
)

type routeKind int

const (
	routeHome routeKind = iota
	routeProject
	routeUnknown
)

// route is a parsed path: "/" or "/projects/<slug>", with the transient
// "?intro=1" flag the presenter consumes.
type route struct {
	kind  routeKind
	slug  string
	intro bool
}

func parsePath(path string) route {
	path = strings.TrimSpace(path)
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query = path[i+1:]
		path = path[:i]
	}
	r := route{}
	switch {
	case path == "" || path == "/":
		r.kind = routeHome
	case strings.HasPrefix(path, "/projects/"):
		slug := strings.Trim(strings.TrimPrefix(path, "/projects/"), "/")
		if slug == "" || strings.Contains(slug, "/") {
			r.kind = routeUnknown
			break
		}
		r.kind = routeProject
		r.slug = slug
	default:
		r.kind = routeUnknown
	}
	for _, kv := range strings.Split(query, "&") {
		if kv == "intro=1" || kv == "intro=true" {
			r.intro = true
		}
	}
	return r
}

func (r route) path() string {
	switch r.kind {
	case routeProject:
		p := "/projects/" + r.slug
		if r.intro {
			p += "?intro=1"
		}
		return p
	default:
		return "/"
	}
}

func projectPath(slug string, intro bool) string {
	return route{kind: routeProject, slug: slug, intro: intro}.path()
}

// siteNav implements the routing capability: navigation validated against
// the catalog, the current path, and non-navigating in-place replacement
// (used to strip the intro flag without recording a navigation).
type siteNav struct {
	cat  *content.Catalog
	path string

	// dest is set when a navigation lands; the page container consumes it
	// to remount the destination view.
	dest *route

	navCount     int
	replaceCount int
}

func newSiteNav(cat *content.Catalog, initialPath string) *siteNav {
	return &siteNav{cat: cat, path: initialPath}
}

func (n *siteNav) CurrentPath() string { return n.path }

// CurrentRouteParams exposes the active route's slug, when any.
func (n *siteNav) CurrentRouteParams() (slug string, ok bool) {
	r := parsePath(n.path)
	return r.slug, r.kind == routeProject
}

func (n *siteNav) NavigateTo(path string) error {
	r := parsePath(path)
	switch r.kind {
	case routeUnknown:
		return fmt.Errorf("no route for %q", path)
	case routeProject:
		if _, err := n.cat.GetProject(r.slug); err != nil {
			return fmt.Errorf("navigating to %q: %w", path, err)
		}
	}
	n.path = path
	n.dest = &r
	n.navCount++
	return nil
}

// ReplaceInPlace updates the current path without a navigation (history
// replacement; no remount, no navigation recorded).
func (n *siteNav) ReplaceInPlace(path string) {
	n.path = path
	n.replaceCount++
}

// takeDest returns and clears the pending destination.
func (n *siteNav) takeDest() (route, bool) {
	if n.dest == nil {
		return route{}, false
	}
	r := *n.dest
	n.dest = nil
	return r, true
}

// vtNav wraps siteNav with the native view-transition capability. The
// transition controller detects it by type assertion; terminals without
// the capability get the plain timer choreography.
type vtNav struct {
	*siteNav
	transitions int
}

func (v *vtNav) StartViewTransition(apply func() error) error {
	v.transitions++
	return apply()
}
