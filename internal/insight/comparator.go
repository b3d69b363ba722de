// Package insight assembles comparative insight reports: it compares two
// periods of aggregated data, renders a generation prompt and drives the
// text backend, caching finished reports by request fingerprint.
package insight

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sovinsight/internal/model"
	"sovinsight/pkg/gateway"
)

// topEngagedCount is how many top-engagement items are sampled per topic
// and period.
const topEngagedCount = 2

// Scope is the caller's resolved visibility for one request: permitted
// label ids per topic, the resolved topic records in request order, and
// the bucket-key to display-name map. Topics absent from the caller's
// projects carry no entry in Labels or Topics but still take part in
// aggregation queries.
type Scope struct {
	Labels map[string][]string
	Topics []model.TopicRecord
	Names  map[string]string
}

type Comparator struct {
	gw *gateway.Client
}

func NewComparator(gw *gateway.Client) *Comparator {
	return &Comparator{gw: gw}
}

// Compare computes both periods and assembles the comparison. Both ranges
// are validated before any network call; the periods run concurrently and
// either failure aborts the whole comparison with no partial result.
func (c *Comparator) Compare(ctx context.Context, creds gateway.Credentials, topicIDs []string, r1, r2 model.DateRange, scope Scope) (model.ComparisonResult, error) {
	if err := r1.Validate(); err != nil {
		return model.ComparisonResult{}, err
	}
	if err := r2.Validate(); err != nil {
		return model.ComparisonResult{}, err
	}

	var period1, period2 model.PeriodData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		period1, err = c.period(gctx, creds, topicIDs, r1, scope)
		return err
	})
	g.Go(func() error {
		var err error
		period2, err = c.period(gctx, creds, topicIDs, r2, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ComparisonResult{}, err
	}

	return model.ComparisonResult{
		Period1:    period1,
		Period2:    period2,
		TopicNames: scope.Names,
	}, nil
}

// period runs the aggregation query and the per-topic engagement sampling
// for one date range, fanned out and joined.
func (c *Comparator) period(ctx context.Context, creds gateway.Credentials, topicIDs []string, r model.DateRange, scope Scope) (model.PeriodData, error) {
	period := model.PeriodData{FromDate: r.From, ToDate: r.To}

	// The aggregation query is scoped by the labels of the leading topic;
	// an unresolved leading topic leaves the label filter absent.
	var aggLabels []string
	if len(topicIDs) > 0 {
		aggLabels = scope.Labels[topicIDs[0]]
	}

	samples := make([]model.EngagementSample, len(scope.Topics))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		buckets, err := c.gw.Aggregate(gctx, creds, topicIDs, r, aggLabels, scope.Names)
		if err != nil {
			return err
		}
		period.Data = buckets
		return nil
	})
	for i, topic := range scope.Topics {
		i, topic := i, topic
		g.Go(func() error {
			items, err := c.gw.TopEngaged(gctx, creds, topic.ID, r, scope.Labels[topic.ID], topEngagedCount)
			if err != nil {
				return err
			}
			samples[i] = model.EngagementSample{TopicID: topic.ID, Items: items}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.PeriodData{}, err
	}

	period.Samples = samples
	return period, nil
}
