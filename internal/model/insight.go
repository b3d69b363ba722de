package model

// TopicRecord is one monitored topic as the identity gateway reports it.
type TopicRecord struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// AggregationBucket holds the volume and sentiment split for one topic
// within a single date range.
type AggregationBucket struct {
	TopicName string          `json:"topic_name"`
	Total     int             `json:"total"`
	Sentiment SentimentCounts `json:"sentiment"`
}

type ContentItem struct {
	ID            string `json:"_id"`
	Type          string `json:"type"`
	PublishedDate string `json:"published_date"`
	SiteName      string `json:"site_name"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Interactions  int64  `json:"interactions"`
}

// EngagementSample is the top-engagement selection for one topic.
type EngagementSample struct {
	TopicID string        `json:"topic_id"`
	Items   []ContentItem `json:"top_interactions_data"`
}

type PeriodData struct {
	FromDate string              `json:"from_date"`
	ToDate   string              `json:"to_date"`
	Data     []AggregationBucket `json:"data"`
	Samples  []EngagementSample  `json:"top_engagement"`
}

// ComparisonResult is the assembled two-period view handed to the prompt
// composer. It is built once per request and not shared across requests.
type ComparisonResult struct {
	Period1    PeriodData        `json:"data_period_1"`
	Period2    PeriodData        `json:"data_period_2"`
	TopicNames map[string]string `json:"topic_names"`
}

// ReportPayload is what callers receive and what the cache stores. The
// period fields are set only for report kinds that expose numeric data.
type ReportPayload struct {
	Report  string      `json:"report"`
	Period1 *PeriodData `json:"data_period_1,omitempty"`
	Period2 *PeriodData `json:"data_period_2,omitempty"`
}

type InsightRequest struct {
	TopicIDs  []string `json:"topic_ids"`
	FromDate1 string   `json:"from_date1"`
	ToDate1   string   `json:"to_date1"`
	FromDate2 string   `json:"from_date2"`
	ToDate2   string   `json:"to_date2"`
}
