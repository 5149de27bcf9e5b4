package prompt

import (
	"fmt"
	"strings"

	"github.com/Shining2020/zhihuiwenzhang/internal/model"
)

const (
	rationalHint   = "Lean toward a decision-oriented tone: weigh the trade-offs and make the reasoning behind each judgement visible."
	experienceHint = "Lean toward a sensory, anecdotal tone: concrete scenes and first-hand impressions over abstract analysis."
)

// StyleHint returns the tone nudge for a style preference, or an empty string
// for the random preference.
func StyleHint(style model.StylePreference) string {
	switch style {
	case model.StyleRational:
		return rationalHint
	case model.StyleExperience:
		return experienceHint
	}
	return ""
}

// BuildSystemPrompt composes persona, content-type guidance, the structural
// framework reference, and the style hint into the system message.
func BuildSystemPrompt(a *Assets, ct model.ContentType, style model.StylePreference) string {
	var b strings.Builder
	b.WriteString(a.Persona)
	b.WriteString("\n\n")
	b.WriteString(a.ContentGuidance(ct))
	if a.Framework != "" {
		b.WriteString("\n\n")
		b.WriteString(a.Framework)
	}
	if hint := StyleHint(style); hint != "" {
		b.WriteString("\n\n")
		b.WriteString(hint)
	}
	return b.String()
}

// BuildUserPrompt produces the instruction text sent as the user message.
// Callers pass models already trimmed, deduplicated and capped; an empty list
// routes to the personal-opinion template.
func BuildUserPrompt(title string, models []string, digest string, ct model.ContentType, style model.StylePreference) string {
	if len(models) == 0 {
		return buildOpinionPrompt(title, style)
	}
	return buildProductPrompt(title, models, digest, ct, style)
}

func buildProductPrompt(title string, models []string, digest string, ct model.ContentType, style model.StylePreference) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a long answer to the discussion question %q, the way a regular forum user would when sharing what they actually think.\n\n", title)
	b.WriteString("Background notes gathered from the web. Treat them as loose background only and never copy a sentence from them literally:\n")
	b.WriteString(digest)
	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "- Keep the question itself at the center. Bring up %s only as illustrative examples along the way, never as the subject of the answer.\n", strings.Join(models, ", "))
	b.WriteString("- For every product you bring up, say who it suits and who it does not suit.\n")
	b.WriteString("- Do not run the products through a uniform checklist or give them equal, list-like treatment.\n")
	b.WriteString("- No spec-sheet language. Talk about how things behave in daily use, not parameter tables.\n")
	if ct == model.ContentBeauty {
		b.WriteString("- When a product is a fragrance, describe its top notes, heart notes and base notes as sensory impressions written out in prose, never as bare ingredient names.\n")
	}
	if hint := StyleHint(style); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	return b.String()
}

func buildOpinionPrompt(title string, style model.StylePreference) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a long answer to the discussion question %q as a personal opinion piece from a regular forum user.\n\n", title)
	b.WriteString("Requirements:\n")
	b.WriteString("- Draw on personal experience and opinion only.\n")
	b.WriteString("- Never mention AI, language models, searching, or where any of the material came from.\n")
	b.WriteString("- Close on an open-ended thought instead of a summary.\n")
	if hint := StyleHint(style); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	return b.String()
}

const maxSnippetsPerModel = 4

// BuildSearchDigest renders the fetched snippets per product, at most four
// each, in the order the products were given.
func BuildSearchDigest(models []string, searchData map[string][]model.SearchResult) string {
	var b strings.Builder
	for i, name := range models {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(name)
		b.WriteString(":\n")

		results := searchData[name]
		if len(results) == 0 {
			b.WriteString("no summary available\n")
			continue
		}
		if len(results) > maxSnippetsPerModel {
			results = results[:maxSnippetsPerModel]
		}
		for _, r := range results {
			fmt.Fprintf(&b, "- %s: %s\n", r.Title, r.Snippet)
		}
	}
	return b.String()
}
