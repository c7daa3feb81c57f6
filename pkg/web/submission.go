package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/gorilla/mux"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/storage"
)

// maxUploadSize bounds a single file upload.
const maxUploadSize = 64 << 20 // 64 MiB

// SubmissionController registers the submission routes.
func SubmissionController(ctx context.Context, r *mux.Router) {
	cfg := config.FromContext(ctx)
	blobs := storage.NewLocalStorage(path.Join(cfg.DataPath, "blobs"))

	r.HandleFunc("/submissions/{id}", requireUser(getSubmission)).Methods(http.MethodGet)
	r.HandleFunc("/submissions/{id}", requireUser(patchSubmission)).Methods(http.MethodPatch)
	r.HandleFunc("/submissions/{id}/submit", requireUser(postSubmit)).Methods(http.MethodPost)
	r.HandleFunc("/submissions/{id}/files", requireUser(getFiles)).Methods(http.MethodGet)
	r.HandleFunc("/submissions/{id}/files", requireUser(postFile(blobs))).Methods(http.MethodPost)
}

type submissionRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	RepositoryURL string `json:"repositoryUrl"`
	TeamID        int64  `json:"teamId,omitempty"`
	Final         bool   `json:"final,omitempty"`
}

func listSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	if !actor.Role.Elevated() {
		renderError(w, proto.ErrForbidden)
		return
	}

	subs, err := be.Submissions(ctx, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}

	views := make([]submissionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, toSubmissionView(s))
	}

	renderJSON(w, http.StatusOK, views)
}

func postSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	sub, err := be.CreateSubmission(ctx, mux.Vars(r)["id"], actor, backend.SubmissionInput{
		Title:         req.Title,
		Description:   req.Description,
		RepositoryURL: req.RepositoryURL,
		TeamID:        req.TeamID,
		Final:         req.Final,
	}, time.Now().UTC())
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, toSubmissionView(sub))
}

func getSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	sub, err := be.Submission(ctx, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}

	if sub.SubmitterID != actor.ID && !actor.Role.Elevated() {
		renderError(w, proto.ErrForbidden)
		return
	}

	renderJSON(w, http.StatusOK, toSubmissionView(sub))
}

func patchSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	sub, err := be.EditSubmission(ctx, mux.Vars(r)["id"], actor, backend.SubmissionInput{
		Title:         req.Title,
		Description:   req.Description,
		RepositoryURL: req.RepositoryURL,
	}, time.Now().UTC())
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, toSubmissionView(sub))
}

func postSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	sub, err := be.SubmitFinal(ctx, mux.Vars(r)["id"], actor, time.Now().UTC())
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, toSubmissionView(sub))
}

// getFiles resolves the submission's files for the requester. Elevated
// roles receive signed URLs, the owner an unsigned listing, everyone
// else an empty list.
func getFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	actor, _ := userFromRequest(r)

	views, err := be.ResolveFiles(ctx, actor, mux.Vars(r)["id"], time.Now().UTC())
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, views)
}

// postFile uploads one file into blob storage and appends it to the
// submission's file list. Ownership and the edit window are checked
// before any bytes hit storage so a rejected request cannot clobber an
// existing blob.
func postFile(blobs storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		be := backend.FromContext(ctx)
		actor, _ := userFromRequest(r)
		id := mux.Vars(r)["id"]
		now := time.Now().UTC()

		sub, err := be.EditableSubmission(ctx, id, actor, now)
		if err != nil {
			renderError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			renderStatus(http.StatusRequestEntityTooLarge)(w, r)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			renderStatus(http.StatusBadRequest)(w, r)
			return
		}
		defer file.Close() //nolint:errcheck

		blobPath := fmt.Sprintf("submissions/%s/%s", sub.PublicID, path.Base(header.Filename))
		size, err := blobs.Put(blobPath, file)
		if err != nil {
			renderError(w, err)
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		existing, err := be.SubmissionFiles(ctx, sub.PublicID)
		if err != nil {
			renderError(w, err)
			return
		}

		files := append(existing, models.SubmissionFile{
			Name:     path.Base(header.Filename),
			BlobPath: blobPath,
			Size:     size,
			MimeType: mimeType,
		})

		if err := be.SetSubmissionFiles(ctx, sub.PublicID, actor, files, now); err != nil {
			renderError(w, err)
			return
		}

		renderStatus(http.StatusCreated)(w, r)
	}
}
