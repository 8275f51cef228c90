package controller

import (
	"net/http"

	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountResponse struct {
	User domain.User `json:"user"`
}

type Register struct {
	RegisterCmd command.Command[command.RegisterRequest, domain.User]
}

func (c Register) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.RegisterCmd.Execute(r.Context(), command.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeCommandError(w, r, err, "unable to register")
		return
	}

	writeJSON(w, r, http.StatusCreated, AccountResponse{User: user})
}

type Login struct {
	LoginCmd command.Command[command.LoginRequest, domain.User]
}

func (c Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.LoginCmd.Execute(r.Context(), command.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeCommandError(w, r, err, "unable to log in")
		return
	}

	writeJSON(w, r, http.StatusOK, AccountResponse{User: user})
}

type Logout struct {
	LogoutCmd command.Command[command.Empty, command.Empty]
}

func (c Logout) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, err := c.LogoutCmd.Execute(r.Context(), command.Empty{}); err != nil {
		writeCommandError(w, r, err, "unable to log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
