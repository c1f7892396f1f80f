package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// TagCount is a tag with the number of tasks carrying it.
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// ListTagsInput contains the parameters for listing tags.
type ListTagsInput struct{}

// ListTagsOutput contains the tag cloud.
type ListTagsOutput struct {
	Tags []TagCount // First-seen order
}

// ListTags is the use case for listing every tag in use.
type ListTags struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewListTags creates a new ListTags use case.
func NewListTags(store domain.TaskStore, logger domain.Logger) *ListTags {
	return &ListTags{
		store:  store,
		logger: logger,
	}
}

// Execute returns the distinct tags with usage counts.
func (uc *ListTags) Execute(_ context.Context, _ ListTagsInput) (*ListTagsOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	all := col.Tasks()
	tags := domain.AllTags(all)
	out := &ListTagsOutput{Tags: make([]TagCount, 0, len(tags))}
	for _, tag := range tags {
		tc := TagCount{Tag: tag}
		for i := range all {
			if all[i].HasTag(tag) {
				tc.Count++
			}
		}
		out.Tags = append(out.Tags, tc)
	}
	return out, nil
}
