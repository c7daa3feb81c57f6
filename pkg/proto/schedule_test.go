package proto

import (
	"errors"
	"testing"
	"time"
)

func scheduleAt(base time.Time) Schedule {
	return Schedule{
		RegistrationStart:  base,
		RegistrationEnd:    base.Add(24 * time.Hour),
		StartDate:          base.Add(48 * time.Hour),
		SubmissionDeadline: base.Add(96 * time.Hour),
		EndDate:            base.Add(120 * time.Hour),
	}
}

func TestScheduleValidate(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := scheduleAt(base).Validate(); err != nil {
		t.Fatalf("Validate() => %v, want nil error", err)
	}

	// registration end equal to start date is allowed, deadline equal to
	// end date is allowed
	s := scheduleAt(base)
	s.StartDate = s.RegistrationEnd
	s.SubmissionDeadline = s.EndDate
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() => %v, want nil error", err)
	}

	bad := []func(*Schedule){
		func(s *Schedule) { s.RegistrationEnd = s.RegistrationStart },
		func(s *Schedule) { s.RegistrationEnd = s.RegistrationStart.Add(-time.Hour) },
		func(s *Schedule) { s.StartDate = s.RegistrationEnd.Add(-time.Minute) },
		func(s *Schedule) { s.EndDate = s.StartDate },
		func(s *Schedule) { s.SubmissionDeadline = s.StartDate.Add(-time.Minute) },
		func(s *Schedule) { s.SubmissionDeadline = s.EndDate.Add(time.Minute) },
	}
	for i, mutate := range bad {
		s := scheduleAt(base)
		mutate(&s)
		if err := s.Validate(); !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("case %d: Validate() => %v, want ErrInvalidSchedule", i, err)
		}
	}
}
