package web

import (
	"time"

	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

type hackathonView struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Status             proto.Status `json:"status"`
	RegistrationStart  time.Time    `json:"registrationStart"`
	RegistrationEnd    time.Time    `json:"registrationEnd"`
	StartDate          time.Time    `json:"startDate"`
	EndDate            time.Time    `json:"endDate"`
	SubmissionDeadline time.Time    `json:"submissionDeadline"`
	PublishedAt        *time.Time   `json:"publishedAt,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
}

func toHackathonView(h models.Hackathon) hackathonView {
	v := hackathonView{
		ID:                 h.PublicID,
		Title:              h.Title,
		Description:        h.Description,
		Status:             h.Status,
		RegistrationStart:  h.RegistrationStart,
		RegistrationEnd:    h.RegistrationEnd,
		StartDate:          h.StartDate,
		EndDate:            h.EndDate,
		SubmissionDeadline: h.SubmissionDeadline,
		CreatedAt:          h.CreatedAt,
	}
	if h.PublishedAt.Valid {
		t := h.PublishedAt.Time
		v.PublishedAt = &t
	}
	return v
}

type submissionView struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	RepositoryURL string                 `json:"repositoryUrl"`
	IsDraft       bool                   `json:"isDraft"`
	IsFinal       bool                   `json:"isFinal"`
	Status        proto.SubmissionStatus `json:"status"`
	SubmittedAt   *time.Time             `json:"submittedAt,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func toSubmissionView(s models.Submission) submissionView {
	v := submissionView{
		ID:            s.PublicID,
		Title:         s.Title,
		Description:   s.Description,
		RepositoryURL: s.RepositoryURL,
		IsDraft:       s.IsDraft,
		IsFinal:       s.IsFinal,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
	}
	if s.SubmittedAt.Valid {
		t := s.SubmittedAt.Time
		v.SubmittedAt = &t
	}
	return v
}
