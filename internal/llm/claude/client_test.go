package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumegen-backend/internal/llm"
)

var testDocs = []llm.DocumentInput{
	{Type: "skills", Title: "Go", Content: "5 years of backend work"},
}

// oracleServer returns an httptest server that answers every Messages API
// call with the given status and assistant text.
func oracleServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, APIVersion, r.Header.Get("Anthropic-Version"))
		assert.NotEmpty(t, r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"type":"api_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": text}},
		})
	}))
}

func testClient(endpoint string) *Client {
	c := NewClient("test-key", "", "en")
	c.endpoint = endpoint
	return c
}

func TestGenerateAnalysisParsesFencedJSON(t *testing.T) {
	body := "```json\n" + `{
		"personalityType": {"type": "Builder", "description": "makes things"},
		"strengths": [{"name": "focus", "evidence": "shipped v2"}],
		"growthAreas": [],
		"coreValues": ["craft"],
		"summary": "A builder."
	}` + "\n```"
	srv := oracleServer(t, http.StatusOK, body)
	defer srv.Close()

	result, err := testClient(srv.URL).GenerateAnalysis(context.Background(), testDocs)
	require.NoError(t, err)
	assert.Equal(t, "Builder", result.PersonalityType.Type)
	assert.Len(t, result.Strengths, 1)
	assert.False(t, result.Degraded)
}

func TestGenerateAnalysisFallsBackOnGarbage(t *testing.T) {
	srv := oracleServer(t, http.StatusOK, "Sorry, I cannot produce JSON today.")
	defer srv.Close()

	result, err := testClient(srv.URL).GenerateAnalysis(context.Background(), testDocs)
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.PersonalityType.Type)
	assert.NotNil(t, result.Strengths)
}

func TestGenerateResumeParsesBareJSON(t *testing.T) {
	body := `{
		"headline": "Backend Engineer",
		"summary": "Five years of Go.",
		"skills": ["Go"],
		"experience": [{"title": "Backend work", "description": "APIs"}],
		"achievements": []
	}`
	srv := oracleServer(t, http.StatusOK, body)
	defer srv.Close()

	result, err := testClient(srv.URL).GenerateResume(context.Background(), testDocs, "engineering", "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", result.Headline)
	assert.False(t, result.Degraded)
}

func TestGenerateResumeFallsBackOnGarbage(t *testing.T) {
	srv := oracleServer(t, http.StatusOK, "```\nnot json\n```")
	defer srv.Close()

	result, err := testClient(srv.URL).GenerateResume(context.Background(), testDocs, "engineering", "")
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotNil(t, result.Skills)
}

func TestThrottledResponse(t *testing.T) {
	srv := oracleServer(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateAnalysis(context.Background(), testDocs)
	assert.ErrorIs(t, err, llm.ErrThrottled)
}

func TestServerErrorIsUnavailable(t *testing.T) {
	srv := oracleServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateAnalysis(context.Background(), testDocs)
	assert.ErrorIs(t, err, llm.ErrGenerationUnavailable)
}

func TestUnreachableEndpointIsUnavailable(t *testing.T) {
	c := testClient("http://127.0.0.1:1")

	_, err := c.GenerateResume(context.Background(), testDocs, "engineering", "")
	assert.ErrorIs(t, err, llm.ErrGenerationUnavailable)
}

func TestStripMarkdownCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"no newline after fence", "```{\"a\":1}", "```{\"a\":1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkdownCodeFences(tt.in))
		})
	}
}
