package handler

import (
	"time"

	"github.com/Shining2020/zhihuiwenzhang/internal/model"
)

type GenerateRequest struct {
	Title           string                           `json:"title"`
	Models          []string                         `json:"models"`
	SearchData      map[string][]SearchResultPayload `json:"searchData"`
	ContentType     string                           `json:"contentType"`
	StylePreference string                           `json:"stylePreference"`
}

type SearchResultPayload struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link,omitempty"`
	Source  string `json:"source,omitempty"`
}

type GenerateResponse struct {
	Success  bool             `json:"success"`
	Article  string           `json:"article"`
	Metadata MetadataResponse `json:"metadata"`
}

type MetadataResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Models          []string `json:"models"`
	ContentType     string   `json:"contentType"`
	StylePreference string   `json:"stylePreference"`
	GeneratedAt     string   `json:"generatedAt"`
}

func toMetadataResponse(m model.ArticleMetadata) MetadataResponse {
	return MetadataResponse{
		ID:              m.ID,
		Title:           m.Title,
		Models:          m.Models,
		ContentType:     string(m.ContentType),
		StylePreference: string(m.StylePreference),
		GeneratedAt:     m.GeneratedAt.Format(time.RFC3339),
	}
}

type SearchRequest struct {
	Model string `json:"model"`
}

type SearchResponse struct {
	Model   string                `json:"model"`
	Results []SearchResultPayload `json:"results"`
}
