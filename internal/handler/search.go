package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shining2020/zhihuiwenzhang/internal/metrics"
	"github.com/Shining2020/zhihuiwenzhang/pkg/search"
)

type SearchHandler struct {
	client search.Client
}

// NewSearchHandler wires the search provider client. A nil client means no
// credential was configured.
func NewSearchHandler(client search.Client) *SearchHandler {
	return &SearchHandler{client: client}
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Model)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model name required"})
		return
	}

	if h.client == nil {
		slog.Error("search refused, search credential not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search credential not configured"})
		return
	}

	results, err := h.client.Search(c.Request.Context(), name)
	if err != nil {
		slog.Warn("search returned nothing usable", "model", name, "error", err)
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not retrieve results"})
		return
	}
	metrics.SearchesTotal.WithLabelValues("ok").Inc()

	payload := make([]SearchResultPayload, len(results))
	for i, r := range results {
		payload[i] = SearchResultPayload{
			Title:   r.Title,
			Snippet: r.Snippet,
			Link:    r.Link,
			Source:  r.Source,
		}
	}

	c.JSON(http.StatusOK, SearchResponse{Model: name, Results: payload})
}
