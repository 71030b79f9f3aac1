package commentservice

import (
	"strings"

	"github.com/sushihentaime/newsfeed/internal/common"
)

func validateCreateComment(v *common.Validator, req *CreateCommentRequest) {
	v.Check(strings.TrimSpace(req.Username) != "", "username", "username must be provided")
	v.Check(strings.TrimSpace(req.Body) != "", "body", "body must be provided")
}
