package store

// Store is an interface for managing hackathons, users, registrations,
// teams, and submissions.
type Store interface {
	UserStore
	HackathonStore
	RegistrationStore
	TeamStore
	SubmissionStore
}
