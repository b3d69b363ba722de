package insight

import (
	"context"

	"golang.org/x/sync/singleflight"

	"sovinsight/internal/apperr"
	"sovinsight/internal/cache"
	"sovinsight/internal/model"
	"sovinsight/pkg/gateway"
	"sovinsight/pkg/llm"
)

// Orchestrator drives one report request end to end: cache check, scope
// resolution, dual-period comparison, prompt composition, synthesis and
// cache store. It owns the cache exclusively.
type Orchestrator struct {
	gw         *gateway.Client
	comparator *Comparator
	completer  llm.Completer
	reports    *cache.ReportCache
	group      singleflight.Group
}

func NewOrchestrator(gw *gateway.Client, completer llm.Completer, reports *cache.ReportCache) *Orchestrator {
	return &Orchestrator{
		gw:         gw,
		comparator: NewComparator(gw),
		completer:  completer,
		reports:    reports,
	}
}

// Generate returns the cached payload for an equivalent earlier request,
// or computes the report. Concurrent requests with the same fingerprint
// share one computation. Failed pipelines are never cached.
func (o *Orchestrator) Generate(ctx context.Context, kind model.ReportKind, creds gateway.Credentials, req model.InsightRequest) (model.ReportPayload, error) {
	key, err := cache.Fingerprint(kind.Path(), req)
	if err != nil {
		return model.ReportPayload{}, err
	}

	if payload, ok := o.reports.Get(key); ok {
		return payload, nil
	}

	result, err, _ := o.group.Do(key, func() (any, error) {
		// A concurrent flight may have stored the payload between our
		// cache check and joining the group.
		if payload, ok := o.reports.Get(key); ok {
			return payload, nil
		}
		return o.generate(ctx, kind, creds, req, key)
	})
	if err != nil {
		return model.ReportPayload{}, err
	}
	return result.(model.ReportPayload), nil
}

func (o *Orchestrator) generate(ctx context.Context, kind model.ReportKind, creds gateway.Credentials, req model.InsightRequest, key string) (model.ReportPayload, error) {
	range1 := model.DateRange{From: req.FromDate1, To: req.ToDate1}
	range2 := model.DateRange{From: req.FromDate2, To: req.ToDate2}

	// Both ranges must be valid before any network call goes out.
	if err := range1.Validate(); err != nil {
		return model.ReportPayload{}, err
	}
	if err := range2.Validate(); err != nil {
		return model.ReportPayload{}, err
	}

	projects, err := o.gw.FetchProjects(ctx, creds)
	if err != nil {
		return model.ReportPayload{}, err
	}
	scope := buildScope(projects, req.TopicIDs)

	cmp, err := o.comparator.Compare(ctx, creds, req.TopicIDs, range1, range2, scope)
	if err != nil {
		return model.ReportPayload{}, err
	}

	prompt := ComposePrompt(kind, cmp)
	report, err := o.completer.Complete(ctx, prompt)
	if err != nil {
		return model.ReportPayload{}, apperr.GenerationUnavailable(err)
	}

	payload := model.ReportPayload{Report: report}
	if kind.HasPeriodData() {
		period1, period2 := cmp.Period1, cmp.Period2
		payload.Period1 = &period1
		payload.Period2 = &period2
	}

	o.reports.Put(key, payload)
	return payload, nil
}

// buildScope resolves every requested topic against one projects graph.
// Unresolved ids keep no scope entry and no name mapping, but they stay
// in the aggregation topic set.
func buildScope(projects []gateway.Project, topicIDs []string) Scope {
	scope := Scope{
		Labels: map[string][]string{},
		Names:  map[string]string{},
	}
	for _, id := range topicIDs {
		if labels, ok := gateway.LabelScope(projects, id); ok {
			scope.Labels[id] = labels
		}
		if topic, ok := gateway.Topic(projects, id); ok {
			scope.Topics = append(scope.Topics, topic)
			scope.Names["topic"+topic.ID] = topic.Name
		}
	}
	return scope
}
