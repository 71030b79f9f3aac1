package common

import (
	"context"
	"fmt"
)

// Resource names a table/column pair that can be checked for a key.
type Resource int

const (
	TopicSlug Resource = iota + 1
	UserUsername
	ArticleID
	CommentID
)

func (r Resource) String() string {
	switch r {
	case TopicSlug:
		return "topics.slug"
	case UserUsername:
		return "users.username"
	case ArticleID:
		return "articles.article_id"
	case CommentID:
		return "comments.comment_id"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

// existsQueries is the only place table and column names reach an existence check.
var existsQueries = map[Resource]string{
	TopicSlug:    `SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`,
	UserUsername: `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
	ArticleID:    `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`,
	CommentID:    `SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = $1)`,
}

// Exists reports whether a row keyed by value exists for the resource. A missing row is
// (false, nil); an error means the lookup itself failed.
func Exists(ctx context.Context, q Querier, r Resource, value any) (bool, error) {
	query, ok := existsQueries[r]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownResource, r)
	}

	var exists bool
	err := q.QueryRowContext(ctx, query, value).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r, err)
	}

	return exists, nil
}
