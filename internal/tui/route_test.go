package tui

import (
	"testing"

	"folio-cli/internal/content"
	"folio-cli/internal/model"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want route
	}{
		{"/", route{kind: routeHome}},
		{"", route{kind: routeHome}},
		{"/projects/morocco", route{kind: routeProject, slug: "morocco"}},
		{"/projects/morocco/", route{kind: routeProject, slug: "morocco"}},
		{"/projects/morocco?intro=1", route{kind: routeProject, slug: "morocco", intro: true}},
		{"/projects/", route{kind: routeUnknown}},
		{"/projects/a/b", route{kind: routeUnknown}},
		{"/elsewhere", route{kind: routeUnknown}},
	}
	for _, c := range cases {
		if got := parsePath(c.in); got != c.want {
			t.Fatalf("parsePath(%q) = %+v; want %+v", c.in, got, c.want)
		}
	}
}

func TestRoutePathRoundTrip(t *testing.T) {
	p := projectPath("morocco", true)
	if p != "/projects/morocco?intro=1" {
		t.Fatalf("projectPath = %q", p)
	}
	if r := parsePath(p); r.slug != "morocco" || !r.intro {
		t.Fatalf("round trip = %+v", r)
	}
}

func TestSiteNavValidatesDestinations(t *testing.T) {
	nav := newSiteNav(testCatalog(), "/")

	if err := nav.NavigateTo("/projects/nope"); err == nil {
		t.Fatalf("unknown slug must fail")
	}
	if nav.CurrentPath() != "/" || nav.navCount != 0 {
		t.Fatalf("failed navigation must not move; path=%q count=%d", nav.CurrentPath(), nav.navCount)
	}

	if err := nav.NavigateTo("/projects/alpha"); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if slug, ok := nav.CurrentRouteParams(); !ok || slug != "alpha" {
		t.Fatalf("route params = %q,%v", slug, ok)
	}
	dest, ok := nav.takeDest()
	if !ok || dest.slug != "alpha" {
		t.Fatalf("dest = %+v,%v", dest, ok)
	}
	if _, ok := nav.takeDest(); ok {
		t.Fatalf("dest must be consumed once")
	}
}

func TestReplaceInPlaceRecordsNoNavigation(t *testing.T) {
	nav := newSiteNav(testCatalog(), "/projects/alpha?intro=1")

	nav.ReplaceInPlace("/projects/alpha")
	if nav.navCount != 0 || nav.replaceCount != 1 {
		t.Fatalf("nav=%d replace=%d", nav.navCount, nav.replaceCount)
	}
	if _, ok := nav.takeDest(); ok {
		t.Fatalf("replacement must not schedule a remount")
	}
	if r := parsePath(nav.CurrentPath()); r.intro {
		t.Fatalf("intro flag must be gone after the replacement")
	}
}

func TestVTNavWrapsNavigation(t *testing.T) {
	nav := &vtNav{siteNav: newSiteNav(content.NewCatalog([]model.Project{{Slug: "x"}}, model.AboutInfo{}), "/")}

	err := nav.StartViewTransition(func() error { return nav.NavigateTo("/projects/x") })
	if err != nil || nav.transitions != 1 || nav.navCount != 1 {
		t.Fatalf("err=%v transitions=%d nav=%d", err, nav.transitions, nav.navCount)
	}
}
