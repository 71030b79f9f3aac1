package commentservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/newsfeed/internal/common"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrResourceNotFound = errors.New("Resource not found")
	ErrAuthorForeignKey = errors.New("author does not exist")
	ErrInvalidVoteDelta = errors.New("inc_votes must be an integer")
)

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) articleExists(ctx context.Context, id int) (bool, error) {
	return common.Exists(ctx, m.db, common.ArticleID, id)
}

func (m *CommentModel) getByArticleID(ctx context.Context, articleID int) ([]Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at ASC, comment_id ASC`

	rows, err := m.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (m *CommentModel) insert(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at`

	err := m.db.QueryRowContext(ctx, query, c.ArticleID, c.Author, c.Body).Scan(&c.ID, &c.Votes, &c.CreatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "comments_author_fkey"):
			return ErrAuthorForeignKey
		case common.ForeignKeyError(err, "comments_article_id_fkey"):
			return ErrResourceNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *CommentModel) updateVotes(ctx context.Context, id, delta int) (*Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, article_id, author, body, votes, created_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, delta, id).Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrCommentNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CommentModel) delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM comments
		WHERE comment_id = $1`

	result, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
