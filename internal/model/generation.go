package model

import "time"

// ContentType selects which guidance block augments the system prompt.
type ContentType string

const (
	ContentAppliance  ContentType = "appliance"
	ContentBeauty     ContentType = "beauty"
	ContentGift       ContentType = "gift"
	ContentDiscussion ContentType = "discussion"
)

// ParseContentType maps a wire value onto a known category. Anything
// unrecognized lands on the discussion category.
func ParseContentType(s string) ContentType {
	switch ContentType(s) {
	case ContentAppliance, ContentBeauty, ContentGift, ContentDiscussion:
		return ContentType(s)
	}
	return ContentDiscussion
}

// StylePreference nudges the generated tone toward decision rationale or
// personal experience. Random means no nudge at all.
type StylePreference string

const (
	StyleRational   StylePreference = "rational"
	StyleExperience StylePreference = "experience"
	StyleRandom     StylePreference = "random"
)

func ParseStylePreference(s string) StylePreference {
	switch StylePreference(s) {
	case StyleRational, StyleExperience, StyleRandom:
		return StylePreference(s)
	}
	return StyleRandom
}

// SearchResult is one normalized search snippet for a product name.
type SearchResult struct {
	Title   string
	Snippet string
	Link    string
	Source  string
}

// ArticleMetadata describes one generated article. Immutable once returned;
// the browser may edit its local copy but the server never keeps one.
type ArticleMetadata struct {
	ID              string
	Title           string
	Models          []string
	ContentType     ContentType
	StylePreference StylePreference
	GeneratedAt     time.Time
}
