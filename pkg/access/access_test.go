package access

import "testing"

func TestRoleRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleParticipant, RoleJudge, RoleOrganizer, RoleAdmin} {
		if got := ParseRole(r.String()); got != r {
			t.Errorf("ParseRole(%q) => %d, want %d", r.String(), got, r)
		}
	}
}

func TestParseRoleInvalid(t *testing.T) {
	if got := ParseRole("superuser"); got >= 0 {
		t.Errorf("ParseRole(superuser) => %d, want negative", got)
	}
}

func TestElevated(t *testing.T) {
	cases := map[Role]bool{
		RoleParticipant: false,
		RoleJudge:       true,
		RoleOrganizer:   true,
		RoleAdmin:       true,
	}
	for r, want := range cases {
		if got := r.Elevated(); got != want {
			t.Errorf("%s.Elevated() => %v, want %v", r, got, want)
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	var r Role
	if err := r.UnmarshalText([]byte("judge")); err != nil {
		t.Fatal(err)
	}
	if r != RoleJudge {
		t.Errorf("UnmarshalText(judge) => %d, want %d", r, RoleJudge)
	}
	if err := r.UnmarshalText([]byte("nope")); err != ErrInvalidRole {
		t.Errorf("UnmarshalText(nope) => %v, want %v", err, ErrInvalidRole)
	}
}
