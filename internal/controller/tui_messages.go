package controller

import "time"

// tickMsg drives the marquee animation for long file names.
type tickMsg time.Time

// fileRow is the list item behind one reported file.
type fileRow struct {
	name     string
	origin   string
	seqs     int
	length   int
	symlink  bool
	molecule string
}

func (f fileRow) FilterValue() string {
	return f.origin
}
