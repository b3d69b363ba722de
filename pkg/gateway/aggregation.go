package gateway

import (
	"context"

	"sovinsight/internal/apperr"
	"sovinsight/internal/model"
)

const aggregationsQuery = `
	query Aggregations($input: IndexesInput!, $filter: FilterBuzzInput, $aggs: [AggregationTypeInput]!) {
		aggregations(input: $input, filter: $filter, aggs: $aggs) {
			status
			message
			data
		}
	}
`

type aggregationsResponse struct {
	Data *struct {
		Aggregations *struct {
			Data *aggregationData `json:"data"`
		} `json:"aggregations"`
	} `json:"data"`
}

type aggregationData struct {
	IndexTerms struct {
		Buckets []indexBucket `json:"buckets"`
	} `json:"_index_terms"`
}

type indexBucket struct {
	Key            string `json:"key"`
	DocCount       int    `json:"doc_count"`
	SentimentTerms struct {
		Buckets []sentimentBucket `json:"buckets"`
	} `json:"sentiment.value_terms"`
}

type sentimentBucket struct {
	Key      int `json:"key"`
	DocCount int `json:"doc_count"`
}

// Aggregate runs one nested topic/sentiment aggregation over the date
// range and returns a bucket per topic, in upstream order. Bucket keys
// are translated to topic names via topicNames ("topic<id>" keyed);
// unknown keys fall back to the raw key. The range is validated before
// any network call.
func (c *Client) Aggregate(ctx context.Context, creds Credentials, topicIDs []string, dr model.DateRange, labels []string, topicNames map[string]string) ([]model.AggregationBucket, error) {
	if err := dr.Validate(); err != nil {
		return nil, err
	}

	payload := graphQLRequest{
		Query: aggregationsQuery,
		Variables: map[string]any{
			"input": map[string]any{"indexes": topicIDs},
			"aggs": []map[string]any{
				{
					"type":   "TERMS",
					"field":  "INDEX",
					"option": map[string]any{"terms": map[string]any{"size": 100}},
					"nest": []map[string]any{
						{
							"type":   "TERMS",
							"field":  "SENTIMENT",
							"option": map[string]any{"terms": map[string]any{"size": 100}},
						},
					},
				},
			},
			"filter": map[string]any{
				"publishedFromDate": dr.From,
				"publishedToDate":   dr.To,
				"types":             contentTypes,
				"isDeleted":         false,
				"sentiments":        []string{"POSITIVE", "NEGATIVE", "NEUTRAL"},
				"labels":            labels,
				"levels":            labelLevels,
			},
		},
	}

	var resp aggregationsResponse
	if err := c.post(ctx, c.gatewayURL, creds, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Aggregations == nil || resp.Data.Aggregations.Data == nil {
		return nil, apperr.InvalidResponseShape("aggregations response missing data.aggregations.data", nil)
	}

	buckets := make([]model.AggregationBucket, 0, len(resp.Data.Aggregations.Data.IndexTerms.Buckets))
	for _, bucket := range resp.Data.Aggregations.Data.IndexTerms.Buckets {
		name, ok := topicNames[bucket.Key]
		if !ok {
			name = bucket.Key
		}
		buckets = append(buckets, model.AggregationBucket{
			TopicName: name,
			Total:     bucket.DocCount,
			Sentiment: mapSentiment(bucket.SentimentTerms.Buckets),
		})
	}
	return buckets, nil
}

// mapSentiment translates upstream sentiment codes to named counts.
// Codes outside 1..3 are not attributed anywhere.
func mapSentiment(buckets []sentimentBucket) model.SentimentCounts {
	var counts model.SentimentCounts
	for _, b := range buckets {
		switch b.Key {
		case 1:
			counts.Negative = b.DocCount
		case 2:
			counts.Neutral = b.DocCount
		case 3:
			counts.Positive = b.DocCount
		}
	}
	return counts
}
