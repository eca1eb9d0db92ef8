package driver

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns expands a mix of literal paths and glob patterns
// (?, *, **  all permitted), then deduplicates while preserving sorted
// order. An empty pattern list or any empty entry is rejected at
// binding time as an invalid option.
func ExpandPatterns(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("patterns: empty list is not allowed")
	}

	seen := make(map[string]struct{})
	var out []string

	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("patterns: empty/NULL entry is not allowed")
		}

		matches, err := expandOne(p)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	sort.Strings(out)
	return out, nil
}

// expandOne expands a single pattern. A pattern containing no glob
// metacharacters is treated as a literal path and returned as-is even if
// the file does not exist yet — the caller's I/O error policy handles that
// at read time.
func expandOne(pattern string) ([]string, error) {
	if !containsGlobMeta(pattern) {
		return []string{pattern}, nil
	}

	base, rel := doublestar.SplitPattern(pattern)
	fsys := os.DirFS(base)
	matches, err := doublestar.Glob(fsys, rel)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if base == "." {
			out = append(out, m)
		} else {
			out = append(out, base+"/"+m)
		}
	}
	return out, nil
}

// containsGlobMeta reports whether pattern uses any doublestar
// metacharacter, distinguishing a literal path from a pattern to expand.
func containsGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
