package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/newsfeed/internal/articleservice"
	"github.com/sushihentaime/newsfeed/internal/commentservice"
	"github.com/sushihentaime/newsfeed/internal/userservice"
)

type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (app *application) getTopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := app.topicService.ListTopics(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"topics": topics}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.ListUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"users": users}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getUserHandler(w http.ResponseWriter, r *http.Request) {
	username := httprouter.ParamsFromContext(r.Context()).ByName("username")

	user, err := app.userService.GetUserByUsername(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getArticlesHandler(w http.ResponseWriter, r *http.Request) {
	req, err := app.readListArticlesRequest(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	list, err := app.articleService.ListArticles(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, articleservice.ErrTopicNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"articles": list.Articles, "total_count": list.TotalCount}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id", "article")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	article, err := app.articleService.GetArticleByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, articleservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateArticleVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id", "article")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input voteRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	article, err := app.articleService.UpdateVotes(r.Context(), id, input.IncVotes)
	if err != nil {
		switch {
		case errors.Is(err, articleservice.ErrInvalidVoteDelta):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, articleservice.ErrArticleNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	var input articleservice.CreateArticleRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	article, err := app.articleService.CreateArticle(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, articleservice.ErrUnknownReference):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getArticleCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id", "article")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.commentService.GetCommentsByArticleID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrArticleNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id", "article")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input commentservice.CreateCommentRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}
	input.ArticleID = id

	comment, err := app.commentService.CreateComment(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrResourceNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		case errors.Is(err, commentservice.ErrAuthorForeignKey):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateCommentVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id", "comment")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input voteRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.commentService.UpdateVotes(r.Context(), id, input.IncVotes)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrInvalidVoteDelta):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, commentservice.ErrCommentNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id", "comment")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.commentService.DeleteComment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrCommentNotFound):
			app.notFoundErrorResponse(w, r, err.Error())
		default:
			app.serviceErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
