package view

import (
	"ProjectBlog/internal/entity"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"
)

// Funcs are the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
		"excerpt":    Excerpt,
		"authorName": AuthorName,
	}
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// Excerpt cuts s to at most n runes, ending with an ellipsis when cut.
func Excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// AuthorName prefers the joined author name and falls back to the display
// string stored with the post.
func AuthorName(b entity.BlogView) string {
	name := strings.TrimSpace(b.AuthorFirstName + " " + b.AuthorLastName)
	if name != "" {
		return name
	}
	return b.Author
}
