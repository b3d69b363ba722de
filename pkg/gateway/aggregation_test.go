package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"

	"sovinsight/internal/apperr"
	"sovinsight/internal/model"
)

var testRange = model.DateRange{From: "2025-05-01T00:00", To: "2025-05-08T00:00"}

func aggregationServer(t *testing.T, calls *int, data map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"aggregations": map[string]any{
					"status":  200,
					"message": "OK",
					"data":    data,
				},
			},
		})
	}))
}

func TestAggregateMapsSentimentCodes(t *testing.T) {
	calls := 0
	srv := aggregationServer(t, &calls, map[string]any{
		"_index_terms": map[string]any{
			"buckets": []map[string]any{
				{
					"key":       "topict1",
					"doc_count": 24,
					"sentiment.value_terms": map[string]any{
						"buckets": []map[string]any{
							{"key": 1, "doc_count": 5},
							{"key": 2, "doc_count": 7},
							{"key": 3, "doc_count": 3},
							{"key": 4, "doc_count": 9},
						},
					},
				},
				{
					"key":       "topicghost",
					"doc_count": 2,
				},
			},
		},
	})
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	names := map[string]string{"topict1": "Brand One"}

	buckets, err := client.Aggregate(context.Background(), Credentials{}, []string{"t1", "ghost"}, testRange, []string{"-1", "a"}, names)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(buckets))

	assert.Equal(t, "Brand One", buckets[0].TopicName)
	assert.Equal(t, 24, buckets[0].Total)
	assert.Equal(t, 5, buckets[0].Sentiment.Negative)
	assert.Equal(t, 7, buckets[0].Sentiment.Neutral)
	assert.Equal(t, 3, buckets[0].Sentiment.Positive)

	// Unmapped bucket key falls back to the raw upstream key.
	assert.Equal(t, "topicghost", buckets[1].TopicName)
	assert.Equal(t, model.SentimentCounts{}, buckets[1].Sentiment)
	assert.Equal(t, 1, calls)
}

func TestAggregateValidatesRangeBeforeNetwork(t *testing.T) {
	calls := 0
	srv := aggregationServer(t, &calls, map[string]any{})
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	_, err := client.Aggregate(context.Background(), Credentials{}, []string{"t1"},
		model.DateRange{From: "2025-05-10T09:00", To: "2025-05-09T09:00"}, nil, nil)
	kind, ok := apperr.KindOf(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, apperr.KindDateRangeInvalid, kind)
	assert.Equal(t, 0, calls)

	_, err = client.Aggregate(context.Background(), Credentials{}, []string{"t1"},
		model.DateRange{From: "2025/05/10 09:00", To: "2025-05-10T09:00"}, nil, nil)
	kind, ok = apperr.KindOf(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, apperr.KindInvalidDateFormat, kind)
	assert.Equal(t, 0, calls)
}

func TestAggregateMissingShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	_, err := client.Aggregate(context.Background(), Credentials{}, []string{"t1"}, testRange, nil, nil)
	kind, ok := apperr.KindOf(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, apperr.KindInvalidResponseShape, kind)
}

func TestAggregateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	_, err := client.Aggregate(context.Background(), Credentials{}, []string{"t1"}, testRange, nil, nil)
	kind, ok := apperr.KindOf(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, apperr.KindUpstreamUnavailable, kind)
}

func TestAggregateSendsScopedFilter(t *testing.T) {
	var gotVariables map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotVariables = req.Variables
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"aggregations": map[string]any{"data": map[string]any{}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)

	_, err := client.Aggregate(context.Background(), Credentials{}, []string{"t1", "t2"}, testRange, []string{"-1", "a", "b"}, nil)
	assert.Equal(t, nil, err)

	filter := gotVariables["filter"].(map[string]any)
	assert.Equal(t, "2025-05-01T00:00", filter["publishedFromDate"])
	assert.Equal(t, "2025-05-08T00:00", filter["publishedToDate"])
	assert.Equal(t, []any{"-1", "a", "b"}, filter["labels"].([]any))

	input := gotVariables["input"].(map[string]any)
	assert.Equal(t, []any{"t1", "t2"}, input["indexes"].([]any))
}
