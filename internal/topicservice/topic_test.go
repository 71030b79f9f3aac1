package topicservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/newsfeed/internal/common"
)

func TestListTopics(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	common.SeedTestData(t, db)
	s := NewTopicService(db)

	topics, err := s.ListTopics(context.Background())
	assert.NoError(t, err)
	assert.Len(t, topics, 3)
	assert.Equal(t, "cats", topics[0].Slug)
	assert.Equal(t, "mitch", topics[1].Slug)
	assert.Equal(t, "paper", topics[2].Slug)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Description)
	}
}

func TestListTopicsEmpty(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewTopicService(db)

	topics, err := s.ListTopics(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}
