package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shining2020/zhihuiwenzhang/internal/metrics"
	"github.com/Shining2020/zhihuiwenzhang/internal/model"
	"github.com/Shining2020/zhihuiwenzhang/internal/prompt"
	"github.com/Shining2020/zhihuiwenzhang/pkg/llm"
)

const maxModels = 3

type GenerateHandler struct {
	completer llm.Completer
	assets    *prompt.Assets
}

// NewGenerateHandler wires the completion client and the static prompt
// assets. A nil completer means no credential was configured; requests are
// refused with a 500 before any network call.
func NewGenerateHandler(completer llm.Completer, assets *prompt.Assets) *GenerateHandler {
	return &GenerateHandler{completer: completer, assets: assets}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	models := sanitizeModels(req.Models)
	if len(models) > 0 && len(req.SearchData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search data"})
		return
	}

	if h.completer == nil {
		slog.Error("generate refused, completion credential not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "credential not configured"})
		return
	}

	contentType := model.ParseContentType(req.ContentType)
	style := model.ParseStylePreference(req.StylePreference)

	digest := prompt.BuildSearchDigest(models, toSearchData(req.SearchData))
	systemPrompt := prompt.BuildSystemPrompt(h.assets, contentType, style)
	userPrompt := prompt.BuildUserPrompt(title, models, digest, contentType, style)

	article, err := h.completer.Complete(c.Request.Context(), systemPrompt, userPrompt)
	if err != nil {
		slog.Error("article generation failed", "title", title, "error", err)
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.GenerationsTotal.WithLabelValues("ok").Inc()

	meta := model.ArticleMetadata{
		ID:              uuid.NewString(),
		Title:           title,
		Models:          models,
		ContentType:     contentType,
		StylePreference: style,
		GeneratedAt:     time.Now().UTC(),
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success:  true,
		Article:  article,
		Metadata: toMetadataResponse(meta),
	})
}

// sanitizeModels trims, drops empties, deduplicates, and caps the product
// names before they reach the prompt builder.
func sanitizeModels(raw []string) []string {
	models := make([]string, 0, maxModels)
	seen := make(map[string]bool, maxModels)
	for _, m := range raw {
		name := strings.TrimSpace(m)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		models = append(models, name)
		if len(models) == maxModels {
			break
		}
	}
	return models
}

func toSearchData(payload map[string][]SearchResultPayload) map[string][]model.SearchResult {
	data := make(map[string][]model.SearchResult, len(payload))
	for name, items := range payload {
		results := make([]model.SearchResult, len(items))
		for i, item := range items {
			results[i] = model.SearchResult{
				Title:   item.Title,
				Snippet: item.Snippet,
				Link:    item.Link,
				Source:  item.Source,
			}
		}
		data[name] = results
	}
	return data
}
