package proto

import "testing"

// Exhaustive closure check: for every pair of statuses, CanTransitionTo must
// agree with the allow-list table and nothing else.
func TestTransitionClosure(t *testing.T) {
	allowed := map[Status]map[Status]bool{
		StatusDraft:              {StatusPublished: true, StatusCancelled: true},
		StatusPublished:          {StatusRegistrationOpen: true, StatusDraft: true, StatusCancelled: true},
		StatusRegistrationOpen:   {StatusRegistrationClosed: true, StatusCancelled: true},
		StatusRegistrationClosed: {StatusInProgress: true, StatusCancelled: true},
		StatusInProgress:         {StatusSubmissionOpen: true, StatusCancelled: true},
		StatusSubmissionOpen:     {StatusSubmissionClosed: true, StatusCancelled: true},
		StatusSubmissionClosed:   {StatusJudging: true, StatusCancelled: true},
		StatusJudging:            {StatusCompleted: true},
		StatusCompleted:          {},
		StatusCancelled:          {},
	}

	for _, from := range Statuses {
		for _, to := range Statuses {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s.CanTransitionTo(%s) => %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range Statuses {
		want := s == StatusCompleted || s == StatusCancelled
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() => %v, want %v", s, got, want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		if err != nil {
			t.Fatalf("ParseStatus(%q) => %v, want nil error", s, err)
		}
		if got != s {
			t.Errorf("ParseStatus(%q) => %s, want %s", s, got, s)
		}
	}

	if _, err := ParseStatus("ARCHIVED"); err == nil {
		t.Error("ParseStatus(ARCHIVED) => nil error, want error")
	}
}

func TestStatusScan(t *testing.T) {
	var s Status
	if err := s.Scan("JUDGING"); err != nil {
		t.Fatal(err)
	}
	if s != StatusJudging {
		t.Errorf("Scan(JUDGING) => %s, want %s", s, StatusJudging)
	}
	if err := s.Scan(42); err == nil {
		t.Error("Scan(42) => nil error, want error")
	}
}
