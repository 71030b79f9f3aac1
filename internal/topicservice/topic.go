package topicservice

import (
	"context"
	"database/sql"
)

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TopicService struct {
	db *sql.DB
}

func NewTopicService(db *sql.DB) *TopicService {
	return &TopicService{db: db}
}

// ListTopics returns every topic ordered by slug.
func (s *TopicService) ListTopics(ctx context.Context) ([]Topic, error) {
	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return topics, nil
}
