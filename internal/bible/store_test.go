package bible

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(filepath.Join("testdata", "bible.json"))
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads fixture", func(t *testing.T) {
		t.Parallel()
		s := loadTestStore(t)
		assert.Len(t, s.Books(), 3)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join("testdata", "no_such_file.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read scripture document")
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{
			name:    "no books",
			doc:     Document{},
			wantErr: ErrNoBooks,
		},
		{
			name: "book without chapters",
			doc: Document{Books: []Book{
				{ID: "1", Name: "Mwanzo"},
			}},
			wantErr: ErrNoChapters,
		},
		{
			name: "chapter without verses",
			doc: Document{Books: []Book{
				{ID: "1", Name: "Mwanzo", Chapters: []Chapter{{Number: "1"}}},
			}},
			wantErr: ErrNoVerses,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.doc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestBookRoundTrip verifies that Book(b.ID) returns the same book for every
// book in document order.
func TestBookRoundTrip(t *testing.T) {
	t.Parallel()
	s := loadTestStore(t)

	for _, b := range s.Books() {
		got, ok := s.Book(b.ID)
		require.True(t, ok, "book %q should be found", b.ID)
		assert.Equal(t, b.ID, got.ID)
		assert.Equal(t, b.Name, got.Name)
	}

	_, ok := s.Book("9999")
	assert.False(t, ok)
}

func TestChapterLookup(t *testing.T) {
	t.Parallel()
	s := loadTestStore(t)

	chapter, ok := s.Chapter("1", "2")
	require.True(t, ok)
	assert.Equal(t, "2", chapter.Number)
	assert.Len(t, chapter.Verses, 2)

	// Lookups are exact string matches; "02" never normalizes to "2".
	_, ok = s.Chapter("1", "02")
	assert.False(t, ok)

	_, ok = s.Chapter("9999", "1")
	assert.False(t, ok)
}

// TestVerseLookup verifies that every (book, chapter, verse) triple present
// in the source resolves to the corresponding verse and absent triples
// return false.
func TestVerseLookup(t *testing.T) {
	t.Parallel()
	s := loadTestStore(t)

	for _, b := range s.Books() {
		for _, c := range b.Chapters {
			for _, v := range c.Verses {
				got, ok := s.Verse(b.ID, c.Number, v.Number)
				require.True(t, ok, "verse %s/%s/%s should be found", b.ID, c.Number, v.Number)
				assert.Equal(t, v.Text, got.Text)
			}
		}
	}

	tests := []struct {
		name                 string
		book, chapter, verse string
	}{
		{"absent book", "9999", "1", "1"},
		{"absent chapter", "1", "99", "1"},
		{"absent verse", "1", "1", "99"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := s.Verse(tt.book, tt.chapter, tt.verse)
			assert.False(t, ok)
		})
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	s := loadTestStore(t)

	totalVerses := 0
	for _, b := range s.Books() {
		for _, c := range b.Chapters {
			totalVerses += len(c.Verses)
		}
	}

	t.Run("empty query matches every verse once", func(t *testing.T) {
		t.Parallel()
		hits := s.Search("")
		assert.Len(t, hits, totalVerses)
	})

	t.Run("case-insensitive substring containment", func(t *testing.T) {
		t.Parallel()
		hits := s.Search("mUNgu")
		require.NotEmpty(t, hits)
		for _, h := range hits {
			assert.Contains(t, strings.ToLower(h.Text), "mungu")
		}

		// Conversely every matching verse appears exactly once.
		matching := 0
		for _, b := range s.Books() {
			for _, c := range b.Chapters {
				for _, v := range c.Verses {
					if strings.Contains(strings.ToLower(v.Text), "mungu") {
						matching++
					}
				}
			}
		}
		assert.Len(t, hits, matching)
	})

	t.Run("hits carry verse identifier not verse text", func(t *testing.T) {
		t.Parallel()
		hits := s.Search("Hapo mwanzo")
		require.Len(t, hits, 1)
		assert.Equal(t, "Mwanzo", hits[0].Book)
		assert.Equal(t, "1", hits[0].Chapter)
		assert.Equal(t, "1", hits[0].Verse)
		assert.Equal(t, "Hapo mwanzo Mungu aliziumba mbingu na nchi.", hits[0].Text)
	})

	t.Run("document order", func(t *testing.T) {
		t.Parallel()
		hits := s.Search("")
		require.Len(t, hits, totalVerses)

		i := 0
		for _, b := range s.Books() {
			for _, c := range b.Chapters {
				for _, v := range c.Verses {
					assert.Equal(t, b.Name, hits[i].Book)
					assert.Equal(t, c.Number, hits[i].Chapter)
					assert.Equal(t, v.Number, hits[i].Verse)
					i++
				}
			}
		}
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, s.Search("xyzzy"))
	})
}
