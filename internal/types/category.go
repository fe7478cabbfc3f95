// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a keyword by the kind of skill it names.
type Category string

const (
	// CategoryTechnical covers languages, frameworks, tools and platforms.
	CategoryTechnical Category = "technical"
	// CategorySoft covers interpersonal and organizational skills.
	CategorySoft Category = "soft"
	// CategoryGeneral covers domain nouns that are neither technical nor soft skills.
	CategoryGeneral Category = "general"
)

// Categories returns all categories in their deterministic processing order.
// Classification precedence follows this order: a term matched as technical is
// never reconsidered as soft or general.
func Categories() []Category {
	return []Category{CategoryTechnical, CategorySoft, CategoryGeneral}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryGeneral:
		return true
	}
	return false
}
