package model

// ReportKind selects the insight template and the response shape.
type ReportKind string

const (
	KindShareOfVoice       ReportKind = "share_of_voice"
	KindSentimentBreakdown ReportKind = "sentiment_breakdown"
	KindBrandHealth        ReportKind = "brand_health"
	KindChannelBreakdown   ReportKind = "channel_breakdown"
	KindBrandAttribute     ReportKind = "brand_attribute"
)

// Path is the endpoint identity for the kind. It is part of the cache
// fingerprint, so it must stay stable.
func (k ReportKind) Path() string {
	switch k {
	case KindShareOfVoice:
		return "/sov/generate_insight"
	case KindSentimentBreakdown:
		return "/sentiment_breakdown/generate_insight"
	case KindBrandHealth:
		return "/brand-health/generate_insight"
	case KindChannelBreakdown:
		return "/channel-breakdown/generate_insight"
	case KindBrandAttribute:
		return "/band-attribute/generate_insight"
	}
	return "/" + string(k)
}

// HasPeriodData reports whether the kind returns the per-period numeric
// data alongside the report text.
func (k ReportKind) HasPeriodData() bool {
	return k != KindSentimentBreakdown
}
