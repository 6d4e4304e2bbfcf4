package firecrawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-agent/internal/application/port/output"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                      {}
func (nopLogger) Info(string, ...any)                       {}
func (nopLogger) Warn(string, ...any)                       {}
func (nopLogger) Error(string, ...any)                      {}
func (n nopLogger) WithField(string, any) output.LoggerPort { return n }
func (nopLogger) Close() error                              { return nil }

func TestSearchParsesResults(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"success":true,"data":[
			{"url":"https://a.example","title":"A","markdown":"content a"},
			{"url":"https://b.example","title":"B","markdown":"content b"}
		]}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, nopLogger{})
	results, err := client.Search(context.Background(), "ci tools", 2)
	require.NoError(t, err)

	assert.Equal(t, "/v1/search", gotPath)
	assert.Equal(t, "ci tools", gotBody["query"])
	assert.Equal(t, float64(2), gotBody["limit"])
	require.Len(t, results, 2)
	assert.Equal(t, "https://a.example", results[0].URL)
	assert.Equal(t, "content b", results[1].Markdown)
}

func TestScrapeReturnsMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/scrape", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"markdown":"# Page"}}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, nopLogger{})
	md, err := client.Scrape(context.Background(), "https://a.example")
	require.NoError(t, err)
	assert.Equal(t, "# Page", md)
}

func TestPostRetriesTransientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, nopLogger{})
	_, err := client.Search(context.Background(), "anything", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPostDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, nopLogger{})
	_, err := client.Search(context.Background(), "anything", 1)
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestSearchAPIFailureFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, nopLogger{})
	_, err := client.Search(context.Background(), "anything", 1)
	assert.Error(t, err)
}
