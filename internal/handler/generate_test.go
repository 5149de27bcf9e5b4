package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Shining2020/zhihuiwenzhang/internal/model"
	"github.com/Shining2020/zhihuiwenzhang/internal/prompt"
	"github.com/Shining2020/zhihuiwenzhang/pkg/llm"
)

type fakeCompleter struct {
	article    string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.article, nil
}

func testPromptAssets() *prompt.Assets {
	return &prompt.Assets{
		Persona:   "persona",
		Framework: "framework",
		Guidance: map[model.ContentType]string{
			model.ContentDiscussion: "discussion guidance",
			model.ContentBeauty:     "beauty guidance",
		},
	}
}

func newTestGenerateRouter(completer llm.Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGenerateHandler(completer, testPromptAssets())
	r.POST("/api/generate", h.Generate)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	return res["error"]
}

func TestGenerateMissingTitle(t *testing.T) {
	r := newTestGenerateRouter(&fakeCompleter{article: "text"})

	w := postJSON(t, r, "/api/generate", GenerateRequest{Title: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title required", errorBody(t, w))
}

func TestGenerateModelsWithoutSearchData(t *testing.T) {
	r := newTestGenerateRouter(&fakeCompleter{article: "text"})

	w := postJSON(t, r, "/api/generate", GenerateRequest{
		Title:  "X",
		Models: []string{"A"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing search data", errorBody(t, w))
}

func TestGenerateNoCredential(t *testing.T) {
	r := newTestGenerateRouter(nil)

	w := postJSON(t, r, "/api/generate", GenerateRequest{Title: "X"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "credential not configured", errorBody(t, w))
}

func TestGenerateWithoutModels(t *testing.T) {
	completer := &fakeCompleter{article: "a long opinion answer"}
	r := newTestGenerateRouter(completer)

	w := postJSON(t, r, "/api/generate", GenerateRequest{Title: "Is a quiet life worth it?"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res GenerateResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.Success)
	assert.Equal(t, "a long opinion answer", res.Article)
	assert.Equal(t, "Is a quiet life worth it?", res.Metadata.Title)
	assert.Equal(t, 0, len(res.Metadata.Models))
	assert.Equal(t, string(model.ContentDiscussion), res.Metadata.ContentType)
	assert.Equal(t, string(model.StyleRandom), res.Metadata.StylePreference)
	assert.NotEqual(t, "", res.Metadata.ID)
	assert.NotEqual(t, "", res.Metadata.GeneratedAt)

	// no-product flow never mentions products
	assert.Equal(t, false, strings.Contains(completer.lastUser, "illustrative examples"))
}

func TestGenerateWithModels(t *testing.T) {
	completer := &fakeCompleter{article: "answer with examples"}
	r := newTestGenerateRouter(completer)

	w := postJSON(t, r, "/api/generate", GenerateRequest{
		Title:  "Which vacuum for a small flat?",
		Models: []string{" Dyson V12 ", "Roborock S8", "", "Dyson V12", "Extra1", "Extra2"},
		SearchData: map[string][]SearchResultPayload{
			"Dyson V12": {{Title: "review", Snippet: "light and strong", Link: "https://example.com/r"}},
		},
		ContentType:     "beauty",
		StylePreference: "rational",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res GenerateResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	// trimmed, deduplicated, capped at three
	assert.Equal(t, []string{"Dyson V12", "Roborock S8", "Extra1"}, res.Metadata.Models)

	assert.Equal(t, true, strings.Contains(completer.lastUser, "Dyson V12"))
	assert.Equal(t, true, strings.Contains(completer.lastUser, "- review: light and strong"))
	assert.Equal(t, true, strings.Contains(completer.lastUser, "Roborock S8:\nno summary available"))
	assert.Equal(t, true, strings.Contains(completer.lastUser, "top notes"))
	assert.Equal(t, true, strings.Contains(completer.lastSystem, "beauty guidance"))
	assert.Equal(t, true, strings.Contains(completer.lastSystem, "persona"))
}

func TestGenerateUnknownEnumsFallBack(t *testing.T) {
	completer := &fakeCompleter{article: "text"}
	r := newTestGenerateRouter(completer)

	w := postJSON(t, r, "/api/generate", GenerateRequest{
		Title:           "X",
		ContentType:     "spaceship",
		StylePreference: "loud",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res GenerateResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, string(model.ContentDiscussion), res.Metadata.ContentType)
	assert.Equal(t, string(model.StyleRandom), res.Metadata.StylePreference)
}

func TestGenerateCompletionTimeout(t *testing.T) {
	r := newTestGenerateRouter(&fakeCompleter{err: llm.ErrTimeout})

	w := postJSON(t, r, "/api/generate", GenerateRequest{Title: "X"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, true, strings.Contains(errorBody(t, w), "timed out"))
}

func TestGenerateUpstreamFailure(t *testing.T) {
	r := newTestGenerateRouter(&fakeCompleter{err: &llm.UpstreamError{Status: 502, Body: "overloaded"}})

	w := postJSON(t, r, "/api/generate", GenerateRequest{Title: "X"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, true, strings.Contains(errorBody(t, w), "overloaded"))
}

func TestGenerateIdempotent(t *testing.T) {
	completer := &fakeCompleter{article: "stable output"}
	r := newTestGenerateRouter(completer)

	body := GenerateRequest{
		Title:  "X",
		Models: []string{"A"},
		SearchData: map[string][]SearchResultPayload{
			"A": {{Title: "t", Snippet: "s", Link: "https://example.com"}},
		},
	}

	var first, second GenerateResponse
	w1 := postJSON(t, r, "/api/generate", body)
	json.Unmarshal(w1.Body.Bytes(), &first)
	firstUser := completer.lastUser

	w2 := postJSON(t, r, "/api/generate", body)
	json.Unmarshal(w2.Body.Bytes(), &second)

	assert.Equal(t, first.Article, second.Article)
	assert.Equal(t, firstUser, completer.lastUser)
	assert.Equal(t, 2, completer.calls)
}

func TestSanitizeModels(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, []string{}},
		{"trims and drops empties", []string{" a ", "", "  "}, []string{"a"}},
		{"deduplicates", []string{"a", "a", "b"}, []string{"a", "b"}},
		{"caps at three", []string{"a", "b", "c", "d"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeModels(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
