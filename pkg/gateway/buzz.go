package gateway

import (
	"context"
	"sort"

	"sovinsight/internal/apperr"
	"sovinsight/internal/model"
)

// buzzPageSize caps how many content items one sampling query requests.
const buzzPageSize = 100

const buzzesQuery = `
	query buzzes($input: IndexesInput!, $filter: FilterBuzzInput) {
		buzzes(input: $input, filter: $filter) {
			status
			message
			total
			skip
			limit
			data {
				_id
				_index
				_source {
					type
					publishedDate
					siteId
					siteName
					url
					title
					content
					interactions
					parentId
					parentDate
					commentParentId
					sentiment { value createdAt createdBy updatedAt updatedBy }
					labels { value createdAt createdBy }
					profile { id name }
				}
			}
		}
	}
`

type buzzesResponse struct {
	Data *struct {
		Buzzes *struct {
			Data []buzzItem `json:"data"`
		} `json:"buzzes"`
	} `json:"data"`
}

type buzzItem struct {
	ID     string `json:"_id"`
	Source struct {
		Type          string `json:"type"`
		PublishedDate string `json:"publishedDate"`
		SiteName      string `json:"siteName"`
		URL           string `json:"url"`
		Title         string `json:"title"`
		Content       string `json:"content"`
		Interactions  int64  `json:"interactions"`
	} `json:"_source"`
}

// TopEngaged fetches up to one page of content items for the topic and
// returns the k items with the highest interaction count. The sort is
// stable, so equal counts keep their upstream order. Fewer than k items,
// or none at all, is a valid result.
func (c *Client) TopEngaged(ctx context.Context, creds Credentials, topicID string, dr model.DateRange, labels []string, k int) ([]model.ContentItem, error) {
	if err := dr.Validate(); err != nil {
		return nil, err
	}

	payload := graphQLRequest{
		Query: buzzesQuery,
		Variables: map[string]any{
			"input": map[string]any{"indexes": []string{topicID}},
			"filter": map[string]any{
				"publishedFromDate": dr.From,
				"publishedToDate":   dr.To,
				"types":             contentTypes,
				"isDeleted":         false,
				"labels":            labels,
				"sentiments":        []string{"NEGATIVE", "POSITIVE", "NEUTRAL"},
				"levels":            labelLevels,
				"skip":              0,
				"limit":             buzzPageSize,
			},
		},
	}

	var resp buzzesResponse
	if err := c.post(ctx, c.gatewayURL, creds, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Buzzes == nil {
		return nil, apperr.InvalidResponseShape("buzzes response missing data.buzzes", nil)
	}

	items := resp.Data.Buzzes.Data
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Source.Interactions > items[j].Source.Interactions
	})
	if len(items) > k {
		items = items[:k]
	}

	top := make([]model.ContentItem, 0, len(items))
	for _, item := range items {
		top = append(top, model.ContentItem{
			ID:            item.ID,
			Type:          item.Source.Type,
			PublishedDate: item.Source.PublishedDate,
			SiteName:      item.Source.SiteName,
			URL:           item.Source.URL,
			Title:         item.Source.Title,
			Content:       item.Source.Content,
			Interactions:  item.Source.Interactions,
		})
	}
	return top, nil
}
