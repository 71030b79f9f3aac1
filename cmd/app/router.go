package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.pathNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api", app.endpointsHandler)
	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	// topics and users
	router.HandlerFunc(http.MethodGet, "/api/topics", app.getTopicsHandler)
	router.HandlerFunc(http.MethodGet, "/api/users", app.getUsersHandler)
	router.HandlerFunc(http.MethodGet, "/api/users/:username", app.getUserHandler)

	// articles
	router.HandlerFunc(http.MethodGet, "/api/articles", app.getArticlesHandler)
	router.HandlerFunc(http.MethodPost, "/api/articles", app.createArticleHandler)
	router.HandlerFunc(http.MethodGet, "/api/articles/:article_id", app.getArticleHandler)
	router.HandlerFunc(http.MethodPatch, "/api/articles/:article_id", app.updateArticleVotesHandler)

	// comments
	router.HandlerFunc(http.MethodGet, "/api/articles/:article_id/comments", app.getArticleCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/api/articles/:article_id/comments", app.createCommentHandler)
	router.HandlerFunc(http.MethodPatch, "/api/comments/:comment_id", app.updateCommentVotesHandler)
	router.HandlerFunc(http.MethodDelete, "/api/comments/:comment_id", app.deleteCommentHandler)

	return app.recoverPanic(app.logRequest(app.enableCORS(app.rateLimit(router))))
}
