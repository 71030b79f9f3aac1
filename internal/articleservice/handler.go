package articleservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/newsfeed/internal/common"
	"golang.org/x/sync/errgroup"
)

func NewArticleService(db *sql.DB) *ArticleService {
	return &ArticleService{m: newArticleModel(db)}
}

// ListArticles returns one page of articles and the total number matching the filter.
// An unknown topic is ErrTopicNotFound; a known topic without articles is an empty page.
func (s *ArticleService) ListArticles(ctx context.Context, req ListArticlesRequest) (*ArticleList, error) {
	q, err := newArticleQuery(req)
	if err != nil {
		return nil, err
	}

	if q.filter.topic != "" {
		ok, err := s.m.topicExists(ctx, q.filter.topic)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrTopicNotFound
		}
	}

	var list ArticleList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		articles, err := s.m.list(gctx, q)
		list.Articles = articles
		return err
	})
	g.Go(func() error {
		total, err := s.m.count(gctx, q)
		list.TotalCount = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetArticleByID returns the article with its body and comment count.
func (s *ArticleService) GetArticleByID(ctx context.Context, id int) (*Article, error) {
	return s.m.getByID(ctx, id)
}

// UpdateVotes adds delta to the article's votes and returns the updated article.
func (s *ArticleService) UpdateVotes(ctx context.Context, id int, delta *int) (*Article, error) {
	if delta == nil {
		return nil, ErrInvalidVoteDelta
	}

	return s.m.updateVotes(ctx, id, *delta)
}

// CreateArticle stores a new article. The topic and author must already exist.
func (s *ArticleService) CreateArticle(ctx context.Context, req *CreateArticleRequest) (*Article, error) {
	v := common.NewValidator()
	validateCreateArticle(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var topicOK, authorOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topicOK, err = s.m.topicExists(gctx, req.Topic)
		return err
	})
	g.Go(func() error {
		var err error
		authorOK, err = s.m.authorExists(gctx, req.Author)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !topicOK || !authorOK {
		return nil, ErrUnknownReference
	}

	a := &Article{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	}
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = DefaultArticleImgURL
	}

	if err := s.m.insert(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}
