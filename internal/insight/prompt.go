package insight

import (
	"encoding/json"
	"fmt"

	"sovinsight/internal/model"
)

// Section markers shared by every report template. Tests and downstream
// formatting rely on these exact strings.
const (
	markerPeriod1      = "### Period 1"
	markerPeriod2      = "### Period 2"
	markerTopicMapping = "### Topic mapping"
	markerRequirements = "### Requirements"
)

var reportSubjects = map[model.ReportKind]string{
	model.KindShareOfVoice:       "Share of Voice (SOV)",
	model.KindSentimentBreakdown: "Sentiment breakdown",
	model.KindBrandHealth:        "Brand health",
	model.KindChannelBreakdown:   "Channel breakdown",
	model.KindBrandAttribute:     "Brand attribute by sentiment",
}

var reportInstructions = map[model.ReportKind]string{
	model.KindShareOfVoice: `You are a professional data analyst. Write an insight report in clear, professional language, containing:
1. **Overview**: a short summary of the SOV across the two periods.
2. **Per-topic comparison**: compare the SOV of each topic (use topic names) between the two periods.
3. **Trends and recommendations**: assess the SOV shift and propose 1-2 concrete actions.
4. **Notable content**: summarize each high-engagement item (under 50 words) and cite its URL as evidence.

Keep the report short, concise and focused on useful insight.`,

	model.KindSentimentBreakdown: `You are a data analysis expert. Write a concise, readable, professional sentiment insight report, containing:
1. **Sentiment overview**: an overall assessment of positive, negative and neutral sentiment across the brands between the two periods.
2. **Per-brand comparison**: evaluate the sentiment change of each brand between the two periods.
3. **Trends and observations**: derive the sentiment trend (rising/falling positivity or negativity) and likely reasons where visible.
4. **Recommended actions**: propose suitable communication actions per brand based on the sentiment movement.

Focus on insight from the sentiment figures; do not repeat the raw data in detail.`,

	model.KindBrandHealth: `You are a professional data analyst. Write a brand health insight report in clear, professional language, containing:
1. **Overview**: a short summary of overall brand health across the two periods.
2. **Per-topic comparison**: compare volume and sentiment balance of each topic (use topic names) between the two periods.
3. **Trends and recommendations**: assess risks to brand health and propose 1-2 concrete actions.
4. **Notable content**: summarize each high-engagement item (under 50 words) and cite its URL as evidence.

Keep the report short, concise and focused on useful insight.`,

	model.KindChannelBreakdown: `You are a professional data analyst. Write a channel breakdown insight report in clear, professional language, containing:
1. **Overview**: a short summary of mention distribution across channels for the two periods.
2. **Per-topic comparison**: compare how each topic's channel mix shifted between the two periods.
3. **Trends and recommendations**: assess the channel shift and propose 1-2 concrete actions.
4. **Notable content**: summarize each high-engagement item (under 50 words) and cite its URL as evidence.

Keep the report short, concise and focused on useful insight.`,

	model.KindBrandAttribute: `You are a professional data analyst. Write a brand attribute insight report in clear, professional language, containing:
1. **Overview**: a short summary of how brand attributes are perceived across the two periods.
2. **Per-topic comparison**: compare the sentiment attached to each topic's attributes between the two periods.
3. **Trends and recommendations**: assess attribute perception shifts and propose 1-2 concrete actions.
4. **Notable content**: summarize each high-engagement item (under 50 words) and cite its URL as evidence.

Keep the report short, concise and focused on useful insight.`,
}

// ComposePrompt renders the comparison into the generation prompt for the
// report kind. Pure and deterministic: the serialized comparison data
// appears verbatim between fixed section markers.
func ComposePrompt(kind model.ReportKind, cmp model.ComparisonResult) string {
	subject := reportSubjects[kind]
	if subject == "" {
		subject = string(kind)
	}
	instructions := reportInstructions[kind]
	if instructions == "" {
		instructions = reportInstructions[model.KindShareOfVoice]
	}

	return fmt.Sprintf(`%s data for two periods:

%s (%s - %s)
%s

%s (%s - %s)
%s

%s
%s

%s
%s
`,
		subject,
		markerPeriod1, cmp.Period1.FromDate, cmp.Period1.ToDate, mustJSON(cmp.Period1),
		markerPeriod2, cmp.Period2.FromDate, cmp.Period2.ToDate, mustJSON(cmp.Period2),
		markerTopicMapping, mustJSON(cmp.TopicNames),
		markerRequirements, instructions,
	)
}

func mustJSON(v any) string {
	out, _ := json.MarshalIndent(v, "", "  ")
	return string(out)
}
