package model

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: RequestStatusPending, want: true},
		{status: RequestStatusApproved, want: true},
		{status: RequestStatusRejected, want: true},
		{status: "", want: false},
		{status: "archived", want: false},
		{status: "Pending", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	req := AccessRequest{Status: RequestStatusPending}
	if !req.IsPending() || req.IsApproved() || req.IsRejected() {
		t.Errorf("pending request predicates wrong: %+v", req)
	}

	req.Status = RequestStatusApproved
	if !req.IsApproved() || req.IsPending() || req.IsRejected() {
		t.Errorf("approved request predicates wrong: %+v", req)
	}

	req.Status = RequestStatusRejected
	if !req.IsRejected() || req.IsPending() || req.IsApproved() {
		t.Errorf("rejected request predicates wrong: %+v", req)
	}
}
