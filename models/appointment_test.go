package models

import "testing"

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		action string
		from   string
		valid  bool
	}{
		{"confirm", StatusPending, true},
		{"confirm", StatusConfirmed, false},
		{"confirm", StatusCompleted, false},
		{"complete", StatusConfirmed, true},
		{"complete", StatusPending, false},
		{"cancel", StatusPending, true},
		{"cancel", StatusConfirmed, true},
		{"cancel", StatusCompleted, false},
		{"cancel", StatusCancelled, false},
		{"no_show", StatusPending, true},
		{"no_show", StatusConfirmed, true},
		{"no_show", StatusNoShow, false},
		{"unknown", StatusPending, false},
	}

	for _, tt := range cases {
		if got := ValidStatusTransition(tt.action, tt.from); got != tt.valid {
			t.Fatalf("ValidStatusTransition(%q, %q)=%v, want %v", tt.action, tt.from, got, tt.valid)
		}
	}
}

func TestActionStatusCoversTransitions(t *testing.T) {
	for action := range statusTransitions {
		if _, ok := ActionStatus[action]; !ok {
			t.Fatalf("action %q has no resulting status", action)
		}
	}
}
