package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_CountsHeadersAndResidues(t *testing.T) {
	stats, err := Extract([]byte(">s1\nACGT\n>s2\nAC-GU\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Headers)
	assert.Equal(t, "ACGTACGU", stats.Residues)
	assert.Equal(t, ">s1", stats.FirstHeader)
}

func TestExtract_NoHeader(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		_, err := Extract([]byte("random text\nmore text\n"))
		require.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := Extract(nil)
		require.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("header not at line start", func(t *testing.T) {
		_, err := Extract([]byte("  >indented\nACGT\n"))
		require.ErrorIs(t, err, ErrNoHeader)
	})
}

func TestExtract_HeadersWithoutResidues(t *testing.T) {
	stats, err := Extract([]byte(">only\n>headers\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Headers)
	assert.Equal(t, "", stats.Residues)
	assert.Equal(t, ">only", stats.FirstHeader)
}

func TestExtract_StripsGapsAndWhitespace(t *testing.T) {
	t.Run("gaps", func(t *testing.T) {
		stats, err := Extract([]byte(">s\nAC--GT\n--\n"))
		require.NoError(t, err)
		assert.Equal(t, "ACGT", stats.Residues)
	})

	t.Run("spaces and tabs", func(t *testing.T) {
		stats, err := Extract([]byte(">s\nAC GT\tAC\n"))
		require.NoError(t, err)
		assert.Equal(t, "ACGTAC", stats.Residues)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		stats, err := Extract([]byte(">s\r\nACGT\r\nACGT\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "ACGTACGT", stats.Residues)
		assert.Equal(t, ">s", stats.FirstHeader)
	})

	t.Run("blank lines", func(t *testing.T) {
		stats, err := Extract([]byte(">s\n\nACGT\n   \n"))
		require.NoError(t, err)
		assert.Equal(t, "ACGT", stats.Residues)
	})
}

func TestExtract_FirstHeaderKeptVerbatim(t *testing.T) {
	stats, err := Extract([]byte(">chr1 Homo sapiens | assembly GRCh38\nACGT\n>chr2\nACGT\n"))
	require.NoError(t, err)

	assert.Equal(t, ">chr1 Homo sapiens | assembly GRCh38", stats.FirstHeader)
}

func TestExtract_BareHeaderLine(t *testing.T) {
	stats, err := Extract([]byte(">\nACGT\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Headers)
	assert.Equal(t, ">", stats.FirstHeader)
}

func TestExtract_MissingTrailingNewline(t *testing.T) {
	stats, err := Extract([]byte(">s\nACGT"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Headers)
	assert.Equal(t, "ACGT", stats.Residues)
}

func TestExtract_LongSingleLine(t *testing.T) {
	residues := strings.Repeat("ACGT", 64*1024)

	stats, err := Extract([]byte(">s\n" + residues + "\n"))
	require.NoError(t, err)

	assert.Equal(t, residues, stats.Residues)
}
