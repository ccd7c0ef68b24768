package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "multisuministros-codes/internal/domain/coderequest"
)

func makeRequest(who, desc string, at time.Time) *domain.CodeRequest {
	return &domain.CodeRequest{
		Description: desc,
		Price:       decimal.NewFromInt(500),
		Supplier:    "TechCR",
		Submitter:   who,
		Status:      domain.StatusPending,
		Note:        domain.VerificationPlaceholder,
		CreatedAt:   at,
	}
}

func TestRequestRepository_CreateAndGet(t *testing.T) {
	repo := NewRequestRepository(openTestDB(t))
	ctx := context.Background()
	at := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

	r := makeRequest("ana", "Cable USB-C 1m", at)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != "Cable USB-C 1m" || got.Status != domain.StatusPending || !got.Price.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.AssignedCode != nil || got.ApprovedBy != nil || got.ApprovedAt != nil {
		t.Fatalf("decision columns should be NULL: %+v", got)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRequestRepository_Lists_NewestFirst(t *testing.T) {
	repo := NewRequestRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

	old := makeRequest("ana", "old", base)
	mid := makeRequest("bob", "mid", base.Add(time.Minute))
	recent := makeRequest("ana", "new", base.Add(2*time.Minute))
	for _, r := range []*domain.CodeRequest{old, mid, recent} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.TransitionFromPending(ctx, mid.ID, domain.Transition{To: domain.StatusRejected, By: "root", At: base}); err != nil {
		t.Fatalf("reject mid: %v", err)
	}

	pending, err := repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != recent.ID || pending[1].ID != old.ID {
		t.Fatalf("unexpected pending order: %+v", pending)
	}

	mine, err := repo.ListBySubmitter(ctx, "ana")
	if err != nil {
		t.Fatalf("ListBySubmitter: %v", err)
	}
	if len(mine) != 2 || mine[0].Description != "new" {
		t.Fatalf("unexpected submitter list: %+v", mine)
	}
}

func TestRequestRepository_TransitionFromPending(t *testing.T) {
	repo := NewRequestRepository(openTestDB(t))
	ctx := context.Background()
	at := time.Date(2025, 9, 7, 8, 0, 0, 0, time.UTC)

	r := makeRequest("ana", "Cable USB-C 1m", at.Add(-time.Hour))
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	code := "TC-100"
	if err := repo.TransitionFromPending(ctx, r.ID, domain.Transition{To: domain.StatusApproved, By: "root", At: at, AssignedCode: &code}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	got, _ := repo.GetByID(ctx, r.ID)
	if got.Status != domain.StatusApproved || got.AssignedCode == nil || *got.AssignedCode != "TC-100" {
		t.Fatalf("not approved: %+v", got)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != "root" || got.ApprovedAt == nil || !got.ApprovedAt.Equal(at) {
		t.Fatalf("approver not stored: %+v", got)
	}

	// loser of the race
	err := repo.TransitionFromPending(ctx, r.ID, domain.Transition{To: domain.StatusRejected, By: "other", At: at})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	got, _ = repo.GetByID(ctx, r.ID)
	if got.Status != domain.StatusApproved || *got.ApprovedBy != "root" {
		t.Fatalf("row changed by losing transition: %+v", got)
	}

	if err := repo.TransitionFromPending(ctx, 424242, domain.Transition{To: domain.StatusRejected}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id: want ErrNotFound, got %v", err)
	}
}
