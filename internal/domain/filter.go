package domain

import (
	"fmt"
	"regexp"
)

// pathFilter holds compiled exclude expressions matched against
// root-relative candidate paths.
type pathFilter struct {
	patterns []*regexp.Regexp
}

func newPathFilter(exprs []string) (*pathFilter, error) {
	filter := &pathFilter{}

	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		filter.patterns = append(filter.patterns, re)
	}

	return filter, nil
}

func (f *pathFilter) excludes(relPath string) bool {
	for _, re := range f.patterns {
		if re.MatchString(relPath) {
			return true
		}
	}

	return false
}
