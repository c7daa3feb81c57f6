package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/stats"
)

// HackathonController registers the hackathon lifecycle routes.
func HackathonController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/hackathons", requireUser(listHackathons)).Methods(http.MethodGet)
	r.HandleFunc("/hackathons", requireUser(postHackathon)).Methods(http.MethodPost)
	r.HandleFunc("/hackathons/{id}", requireUser(getHackathon)).Methods(http.MethodGet)
	r.HandleFunc("/hackathons/{id}", requireUser(patchHackathon)).Methods(http.MethodPatch)
	r.HandleFunc("/hackathons/{id}", requireUser(deleteHackathon)).Methods(http.MethodDelete)
	r.HandleFunc("/hackathons/{id}/status", requireUser(postStatus)).Methods(http.MethodPost)
	r.HandleFunc("/hackathons/{id}/register", requireUser(postRegister)).Methods(http.MethodPost)
	r.HandleFunc("/hackathons/{id}/participants", requireUser(getParticipants)).Methods(http.MethodGet)
	r.HandleFunc("/hackathons/{id}/teams", requireUser(postTeam)).Methods(http.MethodPost)
	r.HandleFunc("/hackathons/{id}/submissions", requireUser(listSubmissions)).Methods(http.MethodGet)
	r.HandleFunc("/hackathons/{id}/submissions", requireUser(postSubmission)).Methods(http.MethodPost)
}

type hackathonRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Schedule    *proto.Schedule `json:"schedule"`
}

func listHackathons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	hackathons, err := be.Hackathons(ctx)
	if err != nil {
		renderError(w, err)
		return
	}

	views := make([]hackathonView, 0, len(hackathons))
	for _, h := range hackathons {
		views = append(views, toHackathonView(h))
	}

	renderJSON(w, http.StatusOK, views)
}

func postHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	var req hackathonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schedule == nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	hackathon, err := be.CreateHackathon(ctx, actor, req.Title, req.Description, *req.Schedule)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, toHackathonView(hackathon))
}

func getHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	hackathon, err := be.Hackathon(ctx, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, toHackathonView(hackathon))
}

func patchHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)
	id := mux.Vars(r)["id"]

	var req hackathonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	hackathon, err := be.SetHackathonDetails(ctx, id, actor, req.Title, req.Description)
	if err != nil {
		renderError(w, err)
		return
	}

	if req.Schedule != nil {
		hackathon, err = be.SetHackathonSchedule(ctx, id, actor, *req.Schedule)
		if err != nil {
			renderError(w, err)
			return
		}
	}

	renderJSON(w, http.StatusOK, toHackathonView(hackathon))
}

func deleteHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	if err := be.DeleteHackathon(ctx, mux.Vars(r)["id"], actor); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

type statusRequest struct {
	Status proto.Status `json:"status"`
}

func postStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	hackathon, err := be.RequestTransition(ctx, mux.Vars(r)["id"], actor, req.Status)
	if err != nil {
		renderError(w, err)
		return
	}

	stats.Transitions.WithLabelValues(req.Status.String()).Inc()
	renderJSON(w, http.StatusOK, toHackathonView(hackathon))
}

func postRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	reg, err := be.Register(ctx, mux.Vars(r)["id"], actor, time.Now().UTC())
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]interface{}{"joinedAt": reg.JoinedAt})
}

func getParticipants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	if !actor.Role.Elevated() {
		renderError(w, proto.ErrForbidden)
		return
	}

	roster, err := be.BuildRoster(ctx, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, roster)
}

type teamRequest struct {
	Name string `json:"name"`
}

func postTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	team, err := be.CreateTeam(ctx, mux.Vars(r)["id"], actor, req.Name)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, map[string]interface{}{"id": team.ID, "name": team.Name})
}
