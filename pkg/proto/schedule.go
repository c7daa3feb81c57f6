package proto

import (
	"fmt"
	"time"
)

// Schedule is the five-timestamp window set of a hackathon.
// Ordering invariant:
//
//	registrationStart < registrationEnd <= startDate < endDate
//	startDate <= submissionDeadline <= endDate
type Schedule struct {
	RegistrationStart  time.Time `json:"registrationStart"`
	RegistrationEnd    time.Time `json:"registrationEnd"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	SubmissionDeadline time.Time `json:"submissionDeadline"`
}

// Validate checks the schedule ordering invariant. It is applied identically
// on create and on any date update.
func (s Schedule) Validate() error {
	if !s.RegistrationEnd.After(s.RegistrationStart) {
		return fmt.Errorf("%w: registration end must be after registration start", ErrInvalidSchedule)
	}
	if s.StartDate.Before(s.RegistrationEnd) {
		return fmt.Errorf("%w: start must not be before registration end", ErrInvalidSchedule)
	}
	if !s.EndDate.After(s.StartDate) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidSchedule)
	}
	if s.SubmissionDeadline.Before(s.StartDate) {
		return fmt.Errorf("%w: submission deadline must not be before start", ErrInvalidSchedule)
	}
	if s.SubmissionDeadline.After(s.EndDate) {
		return fmt.Errorf("%w: submission deadline must not be after end", ErrInvalidSchedule)
	}
	return nil
}
