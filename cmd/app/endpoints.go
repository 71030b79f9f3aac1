package main

import "net/http"

type endpoint struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	Body        any      `json:"body,omitempty"`
}

var endpoints = map[string]endpoint{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/healthcheck": {
		Description: "reports the service status, environment and version",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves the user with the given username",
	},
	"GET /api/articles": {
		Description: "serves a page of articles with the total number matching the filter",
		Queries:     []string{"topic", "search", "sort_by", "order", "limit", "p"},
	},
	"POST /api/articles": {
		Description: "creates an article and serves it",
		Body:        map[string]string{"title": "string", "topic": "string", "author": "string", "body": "string", "article_img_url": "string (optional)"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves the article with its body and comment count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adds inc_votes to the article's votes and serves the updated article",
		Body:        map[string]string{"inc_votes": "integer"},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves the article's comments, oldest first",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to the article and serves it",
		Body:        map[string]string{"username": "string", "body": "string"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adds inc_votes to the comment's votes and serves the updated comment",
		Body:        map[string]string{"inc_votes": "integer"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the comment and responds with no content",
	},
}

func (app *application) endpointsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"endpoints": endpoints}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
