package database

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/store"
)

type submissionStore struct{}

var _ store.SubmissionStore = (*submissionStore)(nil)

// CreateSubmission implements store.SubmissionStore. A teamID of zero
// creates a solo submission.
func (s *submissionStore) CreateSubmission(ctx context.Context, tx db.Handler, publicID string, hackathonID int64, submitterID int64, teamID int64, title string, description string, repositoryURL string) (models.Submission, error) {
	values := []interface{}{
		publicID, hackathonID, submitterID, title, description, repositoryURL, proto.SubmissionDraft,
	}
	query := `INSERT INTO submissions (public_id, hackathon_id, submitter_id, title, description, repository_url, status, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);`
	if teamID > 0 {
		query = `INSERT INTO submissions (public_id, hackathon_id, submitter_id, title, description, repository_url, status, updated_at, team_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, ?);`
		values = append(values, teamID)
	}

	query = tx.Rebind(query)
	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return models.Submission{}, db.WrapError(err)
	}
	return s.GetSubmissionByPublicID(ctx, tx, publicID)
}

// GetSubmissionByID implements store.SubmissionStore.
func (*submissionStore) GetSubmissionByID(ctx context.Context, tx db.Handler, id int64) (models.Submission, error) {
	var sub models.Submission
	query := tx.Rebind("SELECT * FROM submissions WHERE id = ?;")
	err := tx.GetContext(ctx, &sub, query, id)
	return sub, db.WrapError(err)
}

// GetSubmissionByPublicID implements store.SubmissionStore.
func (*submissionStore) GetSubmissionByPublicID(ctx context.Context, tx db.Handler, publicID string) (models.Submission, error) {
	var sub models.Submission
	query := tx.Rebind("SELECT * FROM submissions WHERE public_id = ?;")
	err := tx.GetContext(ctx, &sub, query, publicID)
	return sub, db.WrapError(err)
}

// GetSubmissionsByHackathon implements store.SubmissionStore.
func (*submissionStore) GetSubmissionsByHackathon(ctx context.Context, tx db.Handler, hackathonID int64) ([]models.Submission, error) {
	var subs []models.Submission
	query := tx.Rebind("SELECT * FROM submissions WHERE hackathon_id = ? ORDER BY created_at, id;")
	err := tx.SelectContext(ctx, &subs, query, hackathonID)
	return subs, db.WrapError(err)
}

// GetSubmissionsBySubmitter implements store.SubmissionStore.
func (*submissionStore) GetSubmissionsBySubmitter(ctx context.Context, tx db.Handler, hackathonID int64, submitterID int64) ([]models.Submission, error) {
	var subs []models.Submission
	query := tx.Rebind("SELECT * FROM submissions WHERE hackathon_id = ? AND submitter_id = ? ORDER BY created_at;")
	err := tx.SelectContext(ctx, &subs, query, hackathonID, submitterID)
	return subs, db.WrapError(err)
}

// SetSubmissionDetails implements store.SubmissionStore.
func (*submissionStore) SetSubmissionDetails(ctx context.Context, tx db.Handler, id int64, title string, description string, repositoryURL string) error {
	query := tx.Rebind(`UPDATE submissions SET title = ?, description = ?,
			repository_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, title, description, repositoryURL, id)
	return db.WrapError(err)
}

// FinalizeSubmission implements store.SubmissionStore. A second final
// entry for the same submitter or team trips the partial unique indexes
// and surfaces as db.ErrDuplicateKey.
func (*submissionStore) FinalizeSubmission(ctx context.Context, tx db.Handler, id int64, now time.Time) error {
	query := tx.Rebind(`UPDATE submissions SET is_draft = false, is_final = true,
			status = ?, submitted_at = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, proto.SubmissionSubmitted, now, id)
	return db.WrapError(err)
}

// DeleteSubmissionByID implements store.SubmissionStore.
func (*submissionStore) DeleteSubmissionByID(ctx context.Context, tx db.Handler, id int64) error {
	query := tx.Rebind("DELETE FROM submissions WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, id)
	return db.WrapError(err)
}

// GetSubmissionFiles implements store.SubmissionStore.
func (*submissionStore) GetSubmissionFiles(ctx context.Context, tx db.Handler, submissionID int64) ([]models.SubmissionFile, error) {
	var files []models.SubmissionFile
	query := tx.Rebind("SELECT * FROM submission_files WHERE submission_id = ? ORDER BY position;")
	err := tx.SelectContext(ctx, &files, query, submissionID)
	return files, db.WrapError(err)
}

// ReplaceSubmissionFiles implements store.SubmissionStore.
func (*submissionStore) ReplaceSubmissionFiles(ctx context.Context, tx db.Handler, submissionID int64, files []models.SubmissionFile) error {
	query := tx.Rebind("DELETE FROM submission_files WHERE submission_id = ?;")
	if _, err := tx.ExecContext(ctx, query, submissionID); err != nil {
		return db.WrapError(err)
	}

	query = tx.Rebind(`INSERT INTO submission_files (submission_id, name, blob_path, size, mime_type, position)
			VALUES (?, ?, ?, ?, ?, ?);`)
	for i, f := range files {
		if _, err := tx.ExecContext(ctx, query, submissionID, f.Name, f.BlobPath, f.Size, f.MimeType, i); err != nil {
			return db.WrapError(err)
		}
	}

	return nil
}
