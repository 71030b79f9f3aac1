package articleservice

import (
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// sortColumns is the closed set of sort_by values. Only these expressions are ever
// written into ORDER BY.
var sortColumns = map[string]string{
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"body":          "articles.body",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// articleFilter narrows the article set. The list and count queries share the same
// predicate so total_count always describes the listed rows.
type articleFilter struct {
	topic  string
	search string
}

func (f articleFilter) predicate() sq.And {
	conds := sq.And{}

	if f.topic != "" {
		conds = append(conds, sq.Eq{"articles.topic": f.topic})
	}

	if f.search != "" {
		conds = append(conds, sq.Expr(`articles.title ILIKE '%' || ? || '%' ESCAPE '\'`, escapeLike(f.search)))
	}

	return conds
}

// apply adds the predicate to b, leaving b untouched when nothing filters.
func (f articleFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	conds := f.predicate()
	if len(conds) == 0 {
		return b
	}
	return b.Where(conds)
}

type articleQuery struct {
	filter    articleFilter
	sortExpr  string
	direction string
	limit     int
	offset    int64
}

// newArticleQuery validates req and resolves the defaults.
func newArticleQuery(req ListArticlesRequest) (*articleQuery, error) {
	q := &articleQuery{
		filter: articleFilter{
			topic:  req.Topic,
			search: strings.TrimSpace(req.Search),
		},
		limit: DefaultLimit,
	}
	page := DefaultPage

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	order := strings.ToLower(req.Order)
	if order == "" {
		order = DefaultOrder
	}

	if req.Limit != nil {
		q.limit = *req.Limit
	}
	if req.Page != nil {
		page = *req.Page
	}

	v := newListValidator(sortBy, order, q.limit, page)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	q.sortExpr = sortColumns[sortBy]
	q.direction = orderDirections[order]
	q.offset = pageOffset(page, q.limit)

	return q, nil
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// listSQL selects one page of articles without their bodies.
func (q *articleQuery) listSQL() (string, []any, error) {
	b := psql.
		Select(
			"articles.article_id", "articles.title", "articles.topic", "articles.author",
			"articles.created_at", "articles.votes", "articles.article_img_url",
			"COUNT(comments.comment_id)::int AS comment_count",
		).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id")

	return q.filter.apply(b).
		GroupBy("articles.article_id").
		OrderBy(q.sortExpr+" "+q.direction, "articles.article_id ASC").
		Limit(uint64(q.limit)).
		Offset(uint64(q.offset)).
		ToSql()
}

// countSQL counts every article matching the filter, ignoring pagination.
func (q *articleQuery) countSQL() (string, []any, error) {
	return q.filter.apply(psql.Select("COUNT(*)::int").From("articles")).ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// pageOffset saturates instead of overflowing; a page that far out is simply empty.
func pageOffset(page, limit int) int64 {
	skipped := int64(page - 1)
	if skipped > 0 && skipped > math.MaxInt64/int64(limit) {
		return math.MaxInt64
	}
	return skipped * int64(limit)
}
