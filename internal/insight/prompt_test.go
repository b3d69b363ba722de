package insight

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"sovinsight/internal/model"
)

func testComparison() model.ComparisonResult {
	return model.ComparisonResult{
		Period1: model.PeriodData{
			FromDate: "2025-05-01T00:00",
			ToDate:   "2025-05-08T00:00",
			Data: []model.AggregationBucket{
				{TopicName: "Brand One", Total: 24, Sentiment: model.SentimentCounts{Positive: 3, Neutral: 7, Negative: 5}},
			},
			Samples: []model.EngagementSample{
				{TopicID: "t1", Items: []model.ContentItem{{ID: "b1", URL: "https://example.com/b1", Interactions: 30}}},
			},
		},
		Period2: model.PeriodData{
			FromDate: "2025-05-08T00:00",
			ToDate:   "2025-05-15T00:00",
			Data: []model.AggregationBucket{
				{TopicName: "Brand One", Total: 31, Sentiment: model.SentimentCounts{Positive: 9, Neutral: 12, Negative: 2}},
			},
		},
		TopicNames: map[string]string{"topict1": "Brand One"},
	}
}

func TestComposePromptContainsDataAndMarkers(t *testing.T) {
	cmp := testComparison()
	prompt := ComposePrompt(model.KindShareOfVoice, cmp)

	period1, _ := json.MarshalIndent(cmp.Period1, "", "  ")
	period2, _ := json.MarshalIndent(cmp.Period2, "", "  ")
	topics, _ := json.MarshalIndent(cmp.TopicNames, "", "  ")

	assert.Equal(t, true, strings.Contains(prompt, string(period1)))
	assert.Equal(t, true, strings.Contains(prompt, string(period2)))
	assert.Equal(t, true, strings.Contains(prompt, string(topics)))

	for _, marker := range []string{markerPeriod1, markerPeriod2, markerTopicMapping, markerRequirements} {
		assert.Equal(t, true, strings.Contains(prompt, marker))
	}

	assert.Equal(t, true, strings.Contains(prompt, "2025-05-01T00:00 - 2025-05-08T00:00"))
	assert.Equal(t, true, strings.Contains(prompt, "https://example.com/b1"))
}

func TestComposePromptIsDeterministic(t *testing.T) {
	cmp := testComparison()
	assert.Equal(t, ComposePrompt(model.KindBrandHealth, cmp), ComposePrompt(model.KindBrandHealth, cmp))
}

func TestComposePromptSelectsTemplateByKind(t *testing.T) {
	cmp := testComparison()

	sov := ComposePrompt(model.KindShareOfVoice, cmp)
	sb := ComposePrompt(model.KindSentimentBreakdown, cmp)

	assert.NotEqual(t, sov, sb)
	assert.Equal(t, true, strings.Contains(sov, "Share of Voice (SOV)"))
	assert.Equal(t, true, strings.Contains(sb, "Sentiment breakdown"))
	assert.Equal(t, true, strings.Contains(sb, "Sentiment overview"))
	assert.Equal(t, false, strings.Contains(sb, "Notable content"))
}
