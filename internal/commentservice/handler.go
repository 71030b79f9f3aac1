package commentservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sushihentaime/newsfeed/internal/common"
)

const publishTimeout = 5 * time.Second

func NewCommentService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger) *CommentService {
	return &CommentService{
		m:      newCommentModel(db),
		mb:     mb,
		logger: logger,
	}
}

// GetCommentsByArticleID returns the article's comments, oldest first.
func (s *CommentService) GetCommentsByArticleID(ctx context.Context, articleID int) ([]Comment, error) {
	ok, err := s.m.articleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrArticleNotFound
	}

	return s.m.getByArticleID(ctx, articleID)
}

// CreateComment stores a comment on an existing article and announces it on the
// activity exchange. The author is checked by the storage constraint only.
func (s *CommentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*Comment, error) {
	v := common.NewValidator()
	validateCreateComment(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	ok, err := s.m.articleExists(ctx, req.ArticleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrResourceNotFound
	}

	c := &Comment{
		ArticleID: req.ArticleID,
		Author:    req.Username,
		Body:      req.Body,
	}
	if err := s.m.insert(ctx, c); err != nil {
		return nil, err
	}

	s.publishCreated(c)

	return c, nil
}

// publishCreated never fails the request; the comment is already stored.
func (s *CommentService) publishCreated(c *Comment) {
	if s.mb == nil {
		return
	}

	msg, err := json.Marshal(common.CommentCreated{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		s.logger.Error("could not marshal comment event", slog.Int("comment_id", c.ID), slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = s.mb.Publish(ctx, msg, common.CommentCreatedKey, common.ActivityExchange)
	if err != nil {
		s.logger.Error("could not publish comment event", slog.Int("comment_id", c.ID), slog.String("error", err.Error()))
	}
}

// UpdateVotes adds delta to the comment's votes and returns the updated comment.
func (s *CommentService) UpdateVotes(ctx context.Context, id int, delta *int) (*Comment, error) {
	if delta == nil {
		return nil, ErrInvalidVoteDelta
	}

	return s.m.updateVotes(ctx, id, *delta)
}

// DeleteComment removes the comment permanently.
func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	return s.m.delete(ctx, id)
}
