package gateway

import (
	"context"
	"sort"

	"sovinsight/internal/apperr"
	"sovinsight/internal/model"
)

const meQuery = `
	query me {
		me {
			status
			message
			data {
				_id
				username
				firstName
				lastName
				email
				phone
				avatar
				permissions { roles group }
				projects {
					_id
					name
					displayName
					defaultTopicId
					topics { _id name }
					groupTreeLabels { _id name path }
				}
				status
			}
		}
	}
`

type Project struct {
	ID              string              `json:"_id"`
	Name            string              `json:"name"`
	DisplayName     string              `json:"displayName"`
	DefaultTopicID  string              `json:"defaultTopicId"`
	Topics          []model.TopicRecord `json:"topics"`
	GroupTreeLabels [][]Label           `json:"groupTreeLabels"`
}

type Label struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type meResponse struct {
	Data *struct {
		Me *struct {
			Data *struct {
				Projects []Project `json:"projects"`
			} `json:"data"`
		} `json:"me"`
	} `json:"data"`
}

// FetchProjects retrieves the caller's full project/topic/label graph in
// one request. Callers resolve every topic of a request against the same
// graph.
func (c *Client) FetchProjects(ctx context.Context, creds Credentials) ([]Project, error) {
	payload := graphQLRequest{Query: meQuery, Variables: map[string]any{}}

	var resp meResponse
	if err := c.post(ctx, c.cmsURL, creds, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Me == nil || resp.Data.Me.Data == nil {
		return nil, apperr.InvalidResponseShape("me response missing data.me.data", nil)
	}
	return resp.Data.Me.Data.Projects, nil
}

// LabelScope returns the label ids permitted for topicID: the sentinel
// "-1" followed by the sorted unique label ids of the owning project.
// An unknown topic yields (nil, false), which is not an error.
func LabelScope(projects []Project, topicID string) ([]string, bool) {
	for _, project := range projects {
		for _, topic := range project.Topics {
			if topic.ID == topicID {
				return uniqueLabelIDs(project.GroupTreeLabels), true
			}
		}
	}
	return nil, false
}

// Topic looks up the topic record for topicID across all projects.
func Topic(projects []Project, topicID string) (model.TopicRecord, bool) {
	for _, project := range projects {
		for _, topic := range project.Topics {
			if topic.ID == topicID {
				return topic, true
			}
		}
	}
	return model.TopicRecord{}, false
}

func uniqueLabelIDs(groupTreeLabels [][]Label) []string {
	seen := map[string]bool{}
	for _, tree := range groupTreeLabels {
		for _, label := range tree {
			seen[label.ID] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	// Sorting keeps equivalent inputs byte-identical downstream.
	sort.Strings(ids)

	return append([]string{"-1"}, ids...)
}
