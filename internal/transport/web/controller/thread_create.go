package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

type threadCreateRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// ThreadCreate handles POST /v1/threads.
type ThreadCreate struct {
	AddCmd command.Command[command.AddThreadRequest, domain.Thread]
}

func (c ThreadCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req threadCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Body == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	thread, err := c.AddCmd.Execute(r.Context(), command.AddThreadRequest{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		writeCommandError(w, r, err, "unable to create thread")
		return
	}

	writeJSON(w, r, http.StatusCreated, map[string]domain.Thread{"thread": thread})
}

type commentCreateRequest struct {
	Content string `json:"content"`
}

// CommentCreate handles POST /v1/threads/{thread_id}/comments.
type CommentCreate struct {
	AddCmd command.Command[command.AddCommentRequest, domain.Comment]
}

func (c CommentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["thread_id"]

	var req commentCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	comment, err := c.AddCmd.Execute(r.Context(), command.AddCommentRequest{
		ThreadID: threadID,
		Content:  req.Content,
	})
	if err != nil {
		writeCommandError(w, r, err, "unable to create comment")
		return
	}

	writeJSON(w, r, http.StatusCreated, map[string]domain.Comment{"comment": comment})
}
