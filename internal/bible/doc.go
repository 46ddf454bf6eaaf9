// Package bible provides the immutable in-memory scripture store: a
// three-level book/chapter/verse hierarchy loaded once at startup,
// supporting exact-match lookup and case-insensitive substring search.
package bible
