package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/4insec/pasaka-api/internal/api/shared"
	"github.com/4insec/pasaka-api/internal/bible"
)

// BibleHandler serves read-only scripture lookups and search over the
// shared immutable Bible store. Handlers serialize directly from the shared
// view; nothing here copies or mutates it.
type BibleHandler struct {
	store *bible.Store
}

// NewBibleHandler creates a new BibleHandler backed by the given store.
func NewBibleHandler(store *bible.Store) *BibleHandler {
	return &BibleHandler{
		store: store,
	}
}

// ListBooks handles GET /api/bible/books.
func (h *BibleHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithData(w, r, http.StatusOK, h.store.Books())
}

// GetBook handles GET /api/bible/books/{book_id}.
func (h *BibleHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "book_id")

	book, ok := h.store.Book(bookID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Book '%s' not found", bookID))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, book)
}

// GetChapter handles GET /api/bible/books/{book_id}/{chapter}.
func (h *BibleHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "book_id")
	chapterNo := chi.URLParam(r, "chapter")

	if _, ok := h.store.Book(bookID); !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Book '%s' not found", bookID))
		return
	}

	chapter, ok := h.store.Chapter(bookID, chapterNo)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Chapter %s not found in book '%s'", chapterNo, bookID))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, chapter)
}

// GetVerse handles GET /api/bible/books/{book_id}/{chapter}/{verse}.
func (h *BibleHandler) GetVerse(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "book_id")
	chapterNo := chi.URLParam(r, "chapter")
	verseNo := chi.URLParam(r, "verse")

	if _, ok := h.store.Book(bookID); !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Book '%s' not found", bookID))
		return
	}

	if _, ok := h.store.Chapter(bookID, chapterNo); !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Chapter %s not found in book '%s'", chapterNo, bookID))
		return
	}

	verse, ok := h.store.Verse(bookID, chapterNo, verseNo)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Verse %s not found in chapter %s of book '%s'", verseNo, chapterNo, bookID))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, verse)
}

// Search handles POST /api/bible/search.
func (h *BibleHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, h.store.Search(req.Query))
}
