package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// AuthController registers the login route.
func AuthController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/login", postLogin).Methods(http.MethodPost)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func postLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg := config.FromContext(ctx)
	be := backend.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	user, err := be.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		renderStatus(http.StatusUnauthorized)(w, r)
		return
	}

	token, err := NewUserToken(cfg, user.Username)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]string{"token": token})
}

// UserController registers the user management routes.
func UserController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/users", requireUser(postUser)).Methods(http.MethodPost)
	r.HandleFunc("/user", requireUser(getSelf)).Methods(http.MethodGet)
}

type userRequest struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     access.Role `json:"role"`
}

type userView struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     access.Role `json:"role"`
}

func postUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	if actor.Role != access.RoleAdmin {
		renderError(w, proto.ErrForbidden)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	user, err := be.CreateUser(ctx, req.Username, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, userView{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	})
}

func getSelf(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromRequest(r)
	renderJSON(w, http.StatusOK, userView{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	})
}
