// Package catalog holds the immutable portfolio data: typed public sections per category,
// the hidden and extra overlays, the alias table, and the descriptions used by help views.
// It also implements field resolution and location over that data.
package catalog

import (
	"fmt"
	"strings"
)

// Category tags a section of the catalog. Only the real categories hold data of their own;
// the synthetic tags are used for routing and metadata.
type Category string

const (
	About      Category = "about"
	Education  Category = "education"
	Experience Category = "experience"
	Projects   Category = "projects"
	Skills     Category = "skills"

	Hidden    Category = "hidden"
	Help      Category = "help"
	Freestyle Category = "freestyle"
	Extra     Category = "extra"
)

// RealCategories lists the queryable categories in the fixed order used for listing
// and for freestyle searches.
var RealCategories = []Category{About, Education, Experience, Projects, Skills}

// IsReal reports whether c is one of the queryable categories.
func (c Category) IsReal() bool {
	switch c {
	case About, Education, Experience, Projects, Skills:
		return true
	}
	return false
}

// DisplayName returns the capitalized category name.
func (c Category) DisplayName() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory returns the real category named by s (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsReal() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// CategoryNames returns the real category names joined by sep.
func CategoryNames(sep string) string {
	names := make([]string, len(RealCategories))
	for i, c := range RealCategories {
		names[i] = string(c)
	}
	return strings.Join(names, sep)
}
