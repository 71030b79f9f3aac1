package articleservice

import (
	"strings"

	"github.com/sushihentaime/newsfeed/internal/common"
)

func newListValidator(sortBy, order string, limit, page int) *common.Validator {
	v := common.NewValidator()
	_, ok := sortColumns[sortBy]
	v.Check(ok, "sort_by", "invalid sort_by query")
	v.Check(common.PermittedValue(order, "asc", "desc"), "order", "invalid order query")
	v.Check(limit > 0, "limit", "invalid limit query")
	v.Check(page > 0, "p", "invalid page query")
	return v
}

func validateRequired(v *common.Validator, value, field string) {
	v.Check(strings.TrimSpace(value) != "", field, field+" must be provided")
}

func validateCreateArticle(v *common.Validator, req *CreateArticleRequest) {
	validateRequired(v, req.Title, "title")
	validateRequired(v, req.Topic, "topic")
	validateRequired(v, req.Author, "author")
	validateRequired(v, req.Body, "body")
}
