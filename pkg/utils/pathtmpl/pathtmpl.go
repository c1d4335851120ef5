// Package pathtmpl resolves configured path templates into concrete
// filesystem paths. Templates support a single placeholder, {HEAD_SHA},
// which is replaced with the full commit hash of the triggering job.
package pathtmpl

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Placeholder is the token substituted with the commit hash.
const Placeholder = "{HEAD_SHA}"

// Resolve substitutes every occurrence of Placeholder in tmpl with sha and
// returns the cleaned path. Empty results and paths containing traversal
// elements after substitution are rejected.
func Resolve(tmpl, sha string) (string, error) {
	if tmpl == "" {
		return "", goerr.New("path template is empty")
	}

	resolved := strings.ReplaceAll(tmpl, Placeholder, sha)
	if resolved == "" {
		return "", goerr.New("resolved path is empty", goerr.V("template", tmpl))
	}

	// A commit hash is attacker-influenced input. Refuse any template that
	// resolves to a path with traversal elements.
	for _, elem := range strings.Split(filepath.ToSlash(resolved), "/") {
		if elem == ".." {
			return "", goerr.New("resolved path contains traversal element",
				goerr.V("template", tmpl), goerr.V("resolved", resolved))
		}
	}

	return filepath.Clean(resolved), nil
}
