package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"

	m "github.com/skua-bio/fastascan/internal/model"
)

// IgnoreMatcher reports whether a root-relative path should be skipped
// during candidate collection.
type IgnoreMatcher interface {
	Match(relPath string, isDir bool) bool
}

// LoadGitignore parses the .gitignore sitting at the scan root. A missing
// file yields a matcher that never matches anything. Nested .gitignore
// files are not consulted.
func LoadGitignore(root m.Path) (IgnoreMatcher, error) {
	path := filepath.Join(string(root), ".gitignore")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return matchNothing{}, nil
		}

		return nil, err
	}

	matcher, err := gitignore.NewGitIgnore(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return gitignoreMatcher{root: string(root), matcher: matcher}, nil
}

// gitignoreMatcher rebases root-relative paths onto the scan root before
// delegating, which is the form the gitignore library expects.
type gitignoreMatcher struct {
	root    string
	matcher gitignore.IgnoreMatcher
}

func (g gitignoreMatcher) Match(relPath string, isDir bool) bool {
	return g.matcher.Match(filepath.Join(g.root, relPath), isDir)
}

// matchNothing is the IgnoreMatcher used when no .gitignore exists.
type matchNothing struct{}

func (matchNothing) Match(string, bool) bool { return false }
