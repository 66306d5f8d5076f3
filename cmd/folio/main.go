package main

import (
	"os"
	"strings"

	"folio-cli/internal/cli"
)

func isRoutePath(s string) bool {
	s = strings.TrimSpace(s)
	return s == "/" || strings.HasPrefix(s, "/projects/")
}

// rewriteDirectRouteArgs lets `folio /projects/<slug>` work like
// `folio --path /projects/<slug>`.
//
// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
// before parsing. Users may pass persistent flags first (e.g.
// `folio --dir ... /projects/x`), so we look for the first positional token,
// not just argv[1].
func rewriteDirectRouteArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--config": true,
		"--path":   true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if isRoutePath(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "--path")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectRouteArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
