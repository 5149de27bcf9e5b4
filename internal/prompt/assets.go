package prompt

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shining2020/zhihuiwenzhang/internal/model"
)

// Assets holds the static guidance texts, read once at startup and never
// written afterwards.
type Assets struct {
	Persona   string
	Framework string
	Guidance  map[model.ContentType]string
}

// Load reads the prompt assets from dir. Persona and the discussion guidance
// are required; the other guidance blocks and the framework reference degrade
// to the discussion fallback when missing.
func Load(dir string) (*Assets, error) {
	persona, err := readAsset(dir, "persona.txt")
	if err != nil {
		return nil, fmt.Errorf("load persona: %w", err)
	}
	discussion, err := readAsset(dir, "discussion.txt")
	if err != nil {
		return nil, fmt.Errorf("load discussion guidance: %w", err)
	}

	a := &Assets{
		Persona: persona,
		Guidance: map[model.ContentType]string{
			model.ContentDiscussion: discussion,
		},
	}

	a.Framework, err = readAsset(dir, "framework.txt")
	if err != nil {
		slog.Warn("framework reference missing, continuing without it", "error", err)
		a.Framework = ""
	}

	optional := map[model.ContentType]string{
		model.ContentAppliance: "appliance.txt",
		model.ContentBeauty:    "beauty.txt",
		model.ContentGift:      "gift.txt",
	}
	for ct, name := range optional {
		text, err := readAsset(dir, name)
		if err != nil {
			slog.Warn("content guidance missing, falling back to discussion", "content_type", ct, "error", err)
			continue
		}
		a.Guidance[ct] = text
	}

	return a, nil
}

func readAsset(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return "", fmt.Errorf("%s is empty", name)
	}
	return text, nil
}

// ContentGuidance returns the guidance block for the category, degrading to
// the discussion block when the requested one never loaded.
func (a *Assets) ContentGuidance(ct model.ContentType) string {
	if text, ok := a.Guidance[ct]; ok && text != "" {
		return text
	}
	return a.Guidance[model.ContentDiscussion]
}
