package articleservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/newsfeed/internal/common"
)

var (
	ErrRecordNotFound   = errors.New("article does not exist")
	ErrArticleNotFound  = errors.New("article not found")
	ErrTopicNotFound    = errors.New("not found")
	ErrInvalidVoteDelta = errors.New("inc_votes must be an integer")
	// ErrUnknownReference does not say whether the topic or the author was missing.
	ErrUnknownReference = errors.New("topic or author does not exist")
)

func newArticleModel(db *sql.DB) *ArticleModel {
	return &ArticleModel{db: db}
}

func (m *ArticleModel) topicExists(ctx context.Context, slug string) (bool, error) {
	return common.Exists(ctx, m.db, common.TopicSlug, slug)
}

func (m *ArticleModel) authorExists(ctx context.Context, username string) (bool, error) {
	return common.Exists(ctx, m.db, common.UserUsername, username)
}

func (m *ArticleModel) list(ctx context.Context, q *articleQuery) ([]Article, error) {
	query, args, err := q.listSQL()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		var a Article
		err := rows.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (m *ArticleModel) count(ctx context.Context, q *articleQuery) (int, error) {
	query, args, err := q.countSQL()
	if err != nil {
		return 0, err
	}

	var total int
	err = m.db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (m *ArticleModel) getByID(ctx context.Context, id int) (*Article, error) {
	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url,
			(SELECT COUNT(*)::int FROM comments c WHERE c.article_id = a.article_id) AS comment_count
		FROM articles a
		WHERE a.article_id = $1`

	var a Article
	err := m.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &a, nil
}

// updateVotes applies the delta in a single statement so concurrent votes never lose updates.
func (m *ArticleModel) updateVotes(ctx context.Context, id, delta int) (*Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles
			SET votes = votes + $1
			WHERE article_id = $2
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
		)
		SELECT u.article_id, u.title, u.topic, u.author, u.body, u.created_at, u.votes, u.article_img_url,
			(SELECT COUNT(*)::int FROM comments c WHERE c.article_id = u.article_id) AS comment_count
		FROM updated u`

	var a Article
	err := m.db.QueryRowContext(ctx, query, delta, id).Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrArticleNotFound
		default:
			return nil, err
		}
	}

	return &a, nil
}

func (m *ArticleModel) insert(ctx context.Context, a *Article) error {
	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, created_at, votes`

	err := m.db.QueryRowContext(ctx, query, a.Title, a.Topic, a.Author, a.Body, a.ArticleImgURL).Scan(&a.ID, &a.CreatedAt, &a.Votes)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "articles_topic_fkey"), common.ForeignKeyError(err, "articles_author_fkey"):
			return ErrUnknownReference
		default:
			return err
		}
	}

	return nil
}
