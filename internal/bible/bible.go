package bible

// Document is the root of the scripture source document. The JSON field
// names are bit-exact with the source file and must not be changed.
type Document struct {
	Books []Book `json:"BIBLEBOOK"`
}

// Book is one book of the Bible, identified by a stable numeric-string ID.
type Book struct {
	ID       string    `json:"book_number"`
	Name     string    `json:"book_name"`
	Chapters []Chapter `json:"CHAPTER"`
}

// Chapter is one chapter within a book. Chapter numbers are strings and are
// matched by exact equality, never numerically.
type Chapter struct {
	Number string  `json:"chapter_number"`
	Verses []Verse `json:"VERSES"`
}

// Verse is one verse within a chapter.
type Verse struct {
	Number string `json:"verse_number"`
	Text   string `json:"verse_text"`
}

// SearchHit is one verse whose text contains the search query, annotated
// with its location. Verse carries the verse identifier, Text the content.
type SearchHit struct {
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
	Verse   string `json:"verse"`
	Text    string `json:"text"`
}
