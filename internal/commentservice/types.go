package commentservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/newsfeed/internal/common"
)

type Comment struct {
	ID        int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	ArticleID int    `json:"-"`
	Username  string `json:"username"`
	Body      string `json:"body"`
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m      *CommentModel
	mb     common.MessageProducer
	logger *slog.Logger
}
