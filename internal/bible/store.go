package bible

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Common load errors.
var (
	ErrNoBooks    = errors.New("scripture document contains no books")
	ErrNoChapters = errors.New("book contains no chapters")
	ErrNoVerses   = errors.New("chapter contains no verses")
)

// chapterKey addresses a chapter within the whole Bible.
type chapterKey struct {
	book    string
	chapter string
}

// verseKey addresses a single verse within the whole Bible.
type verseKey struct {
	book    string
	chapter string
	verse   string
}

// Store is the immutable in-memory view of the scripture document. It is
// built once at startup and safe to share across requests without locks:
// nothing mutates it after New returns.
type Store struct {
	books    []Book
	byID     map[string]*Book
	chapters map[chapterKey]*Chapter
	verses   map[verseKey]*Verse
}

// Load reads the scripture document from the given path and builds a Store.
// Any missing hierarchy level is a fatal error, surfaced to the caller.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scripture document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scripture document: %w", err)
	}

	return New(doc)
}

// New builds a Store from a parsed document. It validates that every level
// of the hierarchy is present and builds lookup indices keyed by
// (book, chapter, verse) while preserving document order for iteration.
func New(doc Document) (*Store, error) {
	if len(doc.Books) == 0 {
		return nil, ErrNoBooks
	}

	s := &Store{
		books:    doc.Books,
		byID:     make(map[string]*Book, len(doc.Books)),
		chapters: make(map[chapterKey]*Chapter),
		verses:   make(map[verseKey]*Verse),
	}

	for bi := range s.books {
		book := &s.books[bi]
		if len(book.Chapters) == 0 {
			return nil, fmt.Errorf("%w: book %q", ErrNoChapters, book.ID)
		}

		// First occurrence wins, matching a linear document-order scan.
		if _, ok := s.byID[book.ID]; !ok {
			s.byID[book.ID] = book
		}

		for ci := range book.Chapters {
			chapter := &book.Chapters[ci]
			if len(chapter.Verses) == 0 {
				return nil, fmt.Errorf("%w: book %q chapter %q", ErrNoVerses, book.ID, chapter.Number)
			}

			ck := chapterKey{book: book.ID, chapter: chapter.Number}
			if _, ok := s.chapters[ck]; !ok {
				s.chapters[ck] = chapter
			}

			for vi := range chapter.Verses {
				verse := &chapter.Verses[vi]
				vk := verseKey{book: book.ID, chapter: chapter.Number, verse: verse.Number}
				if _, ok := s.verses[vk]; !ok {
					s.verses[vk] = verse
				}
			}
		}
	}

	return s, nil
}

// Books returns all books in document order. The returned slice is the
// shared read-only view; callers must not modify it.
func (s *Store) Books() []Book {
	return s.books
}

// Book returns the book with the given ID, or false if absent.
// Matching is by exact string equality.
func (s *Store) Book(bookID string) (*Book, bool) {
	book, ok := s.byID[bookID]
	return book, ok
}

// Chapter returns the chapter identified by (bookID, chapterNo), or false
// if either level is absent.
func (s *Store) Chapter(bookID, chapterNo string) (*Chapter, bool) {
	chapter, ok := s.chapters[chapterKey{book: bookID, chapter: chapterNo}]
	return chapter, ok
}

// Verse returns the verse identified by (bookID, chapterNo, verseNo), or
// false if any level is absent.
func (s *Store) Verse(bookID, chapterNo, verseNo string) (*Verse, bool) {
	verse, ok := s.verses[verseKey{book: bookID, chapter: chapterNo, verse: verseNo}]
	return verse, ok
}

// Search performs a case-insensitive substring search over verse text. The
// query is lowercased once; a verse matches when its lowercased text
// contains the lowercased query, so the empty query matches every verse.
// Hits are emitted in nested document order (book, chapter, verse).
func (s *Store) Search(query string) []SearchHit {
	query = strings.ToLower(query)

	// Non-nil so an empty result serializes as [] rather than null.
	hits := []SearchHit{}
	for bi := range s.books {
		book := &s.books[bi]
		for ci := range book.Chapters {
			chapter := &book.Chapters[ci]
			for vi := range chapter.Verses {
				verse := &chapter.Verses[vi]
				if strings.Contains(strings.ToLower(verse.Text), query) {
					hits = append(hits, SearchHit{
						Book:    book.Name,
						Chapter: chapter.Number,
						Verse:   verse.Number,
						Text:    verse.Text,
					})
				}
			}
		}
	}
	return hits
}
