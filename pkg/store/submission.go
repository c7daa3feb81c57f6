package store

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// SubmissionStore is an interface for managing submissions and their
// attached files.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, h db.Handler, publicID string, hackathonID int64, submitterID int64, teamID int64, title string, description string, repositoryURL string) (models.Submission, error)
	GetSubmissionByID(ctx context.Context, h db.Handler, id int64) (models.Submission, error)
	GetSubmissionByPublicID(ctx context.Context, h db.Handler, publicID string) (models.Submission, error)
	GetSubmissionsByHackathon(ctx context.Context, h db.Handler, hackathonID int64) ([]models.Submission, error)
	GetSubmissionsBySubmitter(ctx context.Context, h db.Handler, hackathonID int64, submitterID int64) ([]models.Submission, error)
	SetSubmissionDetails(ctx context.Context, h db.Handler, id int64, title string, description string, repositoryURL string) error
	// FinalizeSubmission marks a draft as the final entry for its
	// hackathon, stamping submitted_at. The partial unique indexes on
	// submissions reject a second final entry per submitter or team.
	FinalizeSubmission(ctx context.Context, h db.Handler, id int64, now time.Time) error
	DeleteSubmissionByID(ctx context.Context, h db.Handler, id int64) error

	GetSubmissionFiles(ctx context.Context, h db.Handler, submissionID int64) ([]models.SubmissionFile, error)
	ReplaceSubmissionFiles(ctx context.Context, h db.Handler, submissionID int64, files []models.SubmissionFile) error
}
