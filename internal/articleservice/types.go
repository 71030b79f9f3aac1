package articleservice

import (
	"database/sql"
	"time"
)

// DefaultArticleImgURL is stored when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

type Article struct {
	ID     int    `json:"article_id"`
	Title  string `json:"title"`
	Topic  string `json:"topic"`
	Author string `json:"author"`
	// Body is left out of listings.
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleList is one page of articles plus the number of articles matching the filter.
type ArticleList struct {
	Articles   []Article `json:"articles"`
	TotalCount int       `json:"total_count"`
}

// ListArticlesRequest holds the listing parameters. Empty strings and nil pointers fall
// back to the defaults.
type ListArticlesRequest struct {
	Topic  string
	Search string
	SortBy string
	Order  string
	Limit  *int
	Page   *int
}

type CreateArticleRequest struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	ArticleImgURL string `json:"article_img_url"`
}

type ArticleModel struct {
	db *sql.DB
}

type ArticleService struct {
	m *ArticleModel
}
