package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"

	"sovinsight/internal/apperr"
)

func buzzServer(t *testing.T, items []map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"buzzes": map[string]any{
					"total": len(items),
					"data":  items,
				},
			},
		})
	}))
}

func buzzItemJSON(id string, interactions int64) map[string]any {
	return map[string]any{
		"_id": id,
		"_source": map[string]any{
			"type":          "NEWS_TOPIC",
			"publishedDate": "2025-05-02T10:00",
			"siteName":      "example.com",
			"url":           "https://example.com/" + id,
			"title":         "Post " + id,
			"content":       "content",
			"interactions":  interactions,
		},
	}
}

func TestTopEngagedStableSelection(t *testing.T) {
	srv := buzzServer(t, []map[string]any{
		buzzItemJSON("low", 10),
		buzzItemJSON("first-tie", 30),
		buzzItemJSON("second-tie", 30),
		buzzItemJSON("lowest", 5),
	})
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	items, err := client.TopEngaged(context.Background(), Credentials{}, "t1", testRange, []string{"-1"}, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))

	// Ties keep their upstream relative order.
	assert.Equal(t, "first-tie", items[0].ID)
	assert.Equal(t, "second-tie", items[1].ID)
	assert.Equal(t, int64(30), items[0].Interactions)
}

func TestTopEngagedFewerThanK(t *testing.T) {
	srv := buzzServer(t, []map[string]any{buzzItemJSON("only", 7)})
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	items, err := client.TopEngaged(context.Background(), Credentials{}, "t1", testRange, nil, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "only", items[0].ID)
	assert.Equal(t, "https://example.com/only", items[0].URL)
}

func TestTopEngagedEmpty(t *testing.T) {
	srv := buzzServer(t, nil)
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	items, err := client.TopEngaged(context.Background(), Credentials{}, "t1", testRange, nil, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(items))
}

func TestTopEngagedMissingShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	_, err := client.TopEngaged(context.Background(), Credentials{}, "t1", testRange, nil, 2)
	kind, ok := apperr.KindOf(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, apperr.KindInvalidResponseShape, kind)
}
