package proto

import "errors"

var (
	// ErrInvalidSchedule is returned when hackathon dates are out of order.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrForbidden is returned when the actor lacks ownership or role.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition is returned when a status change is not in the allow-list.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrRegistrationClosed is returned when registering outside the registration window.
	ErrRegistrationClosed = errors.New("registration is closed")
	// ErrSubmissionWindowNotOpen is returned when submitting before the event starts.
	ErrSubmissionWindowNotOpen = errors.New("submission window is not open")
	// ErrSubmissionLocked is returned when submitting after the deadline.
	ErrSubmissionLocked = errors.New("submissions are locked")
	// ErrNotRegistered is returned when submitting without a registration.
	ErrNotRegistered = errors.New("not registered for this hackathon")
	// ErrAlreadyFinal is returned when editing a finalized submission.
	ErrAlreadyFinal = errors.New("submission is already final")
	// ErrDuplicateFinalSubmission is returned when a second final submission
	// for the same submitter is caught by the uniqueness backstop.
	ErrDuplicateFinalSubmission = errors.New("a final submission already exists")
	// ErrSigningUnavailable indicates the signing credential is missing or
	// misconfigured. Non-fatal: file access degrades to unsigned delivery.
	ErrSigningUnavailable = errors.New("url signing unavailable")
	// ErrHackathonNotFound is returned when a hackathon is not found.
	ErrHackathonNotFound = errors.New("hackathon not found")
	// ErrHackathonStarted is returned when deleting a hackathon that has started.
	ErrHackathonStarted = errors.New("hackathon has already started")
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExist is returned when a username is already taken.
	ErrUserExist = errors.New("user already exists")
)
