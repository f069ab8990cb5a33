package blogs

import (
	"ProjectBlog/internal/entity"
	"fmt"
	"strings"
)

type Category struct {
	ID    int64
	Name  string
	Title string
}

// Categories is the fixed id/name/title table. Ids are assigned here, never by
// the store.
var Categories = []Category{
	{ID: 1, Name: "technology", Title: "Technology"},
	{ID: 2, Name: "design", Title: "Design"},
	{ID: 3, Name: "startup", Title: "Startup"},
	{ID: 4, Name: "lifestyle", Title: "Lifestyle"},
	{ID: 5, Name: "tools", Title: "Tools"},
	{ID: 6, Name: "mobile", Title: "Mobile"},
	{ID: 7, Name: "tips", Title: "Tips"},
}

// LookupCategory matches name case-insensitively.
func LookupCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

func (c Category) Entity() entity.BlogCategory {
	return entity.BlogCategory{ID: c.ID, Title: c.Title}
}

// ValidateCategories fails when ids are not exactly 1..n in order or when a
// name or title is empty or repeated.
func ValidateCategories(categories []Category) error {
	names := make(map[string]struct{}, len(categories))
	for i, c := range categories {
		if c.ID != int64(i+1) {
			return fmt.Errorf("category %q has id %d, want %d", c.Name, c.ID, i+1)
		}
		if c.Name == "" || c.Title == "" {
			return fmt.Errorf("category %d has an empty name or title", c.ID)
		}
		if c.Name != strings.ToLower(c.Name) {
			return fmt.Errorf("category name %q must be lower case", c.Name)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("duplicate category name %q", c.Name)
		}
		names[c.Name] = struct{}{}
	}
	return nil
}
