package backend

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// signedURLFallback bounds the signed URL validity when the hackathon
// end date is absent or already nonsensical.
const signedURLFallback = 7 * 24 * time.Hour

// ResolveFiles projects a submission's files for one requester,
// filtering and transforming per capability:
//
//   - elevated roles receive a read-only signed URL expiring at the
//     hackathon's end date. When signing is unavailable the entry
//     degrades to the unsigned durable URL, distinguishable through
//     Signed=false, rather than failing the response.
//   - the submitter sees their own files unsigned and without any
//     privileged URL.
//   - everyone else gets nothing: the file is omitted, not an error.
func (b *Backend) ResolveFiles(ctx context.Context, requester models.User, publicID string, now time.Time) ([]proto.FileView, error) {
	sub, err := b.Submission(ctx, publicID)
	if err != nil {
		return nil, err
	}

	hackathon, err := b.store.GetHackathonByID(ctx, b.db, sub.HackathonID)
	if err != nil {
		return nil, err
	}

	files, err := b.store.GetSubmissionFiles(ctx, b.db, sub.ID)
	if err != nil {
		return nil, err
	}

	expiry := hackathon.EndDate
	if expiry.IsZero() || expiry.Before(now) {
		expiry = now.Add(signedURLFallback)
	}

	views := make([]proto.FileView, 0, len(files))
	for _, f := range files {
		view, ok := b.resolveFile(f, requester, sub.SubmitterID, expiry)
		if !ok {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

func (b *Backend) resolveFile(f models.SubmissionFile, requester models.User, ownerID int64, expiry time.Time) (proto.FileView, bool) {
	view := proto.FileView{
		Name:     f.Name,
		Size:     f.Size,
		MimeType: f.MimeType,
	}

	switch {
	case requester.Role.Elevated():
		if b.signer == nil {
			b.logger.Warn("url signing unavailable, serving unsigned", "file", f.Name)
			view.DownloadURL = f.BlobPath
			return view, true
		}

		signed, err := b.signer.SignReadURL(f.BlobPath, expiry)
		if err != nil {
			// Losing secure delivery is less harmful than losing
			// visibility of a valid submission.
			b.logger.Error("url signing failed, serving unsigned", "file", f.Name, "err", err)
			view.DownloadURL = b.signer.URL(f.BlobPath)
			return view, true
		}

		view.DownloadURL = signed
		view.Signed = true
		view.ExpiresAt = expiry
		return view, true

	case requester.ID == ownerID:
		return view, true

	default:
		return proto.FileView{}, false
	}
}
