package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
)

func newClubFixture() (*ClubService, *fakeClubRepo) {
	repo := newFakeClubRepo(
		&models.Club{ID: 1, Name: "Chess Club", Status: domain.ClubStatusApproved, OwnerID: 10},
		&models.Club{ID: 2, Name: "Film Appreciation", Status: domain.ClubStatusPending, OwnerID: 11},
	)
	return NewClubService(repo), repo
}

func TestListApprovedHidesPendingClubs(t *testing.T) {
	svc, _ := newClubFixture()

	clubs, err := svc.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(clubs) != 1 {
		t.Fatalf("clubs = %d, want 1", len(clubs))
	}
	if clubs[0].Name != "Chess Club" {
		t.Errorf("club = %q, want Chess Club", clubs[0].Name)
	}
}

func TestGetByIDReturnsAnyStatus(t *testing.T) {
	svc, _ := newClubFixture()

	club, err := svc.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if club.Status != domain.ClubStatusPending {
		t.Errorf("status = %q, want pending club visible by ID", club.Status)
	}
}

func TestGetByIDUnknownClub(t *testing.T) {
	svc, _ := newClubFixture()

	if _, err := svc.GetByID(context.Background(), 999); !errors.Is(err, ErrClubNotFound) {
		t.Errorf("err = %v, want ErrClubNotFound", err)
	}
}

func TestApproveMovesPendingToApproved(t *testing.T) {
	svc, repo := newClubFixture()

	club, err := svc.Approve(context.Background(), 2)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if club.Status != domain.ClubStatusApproved {
		t.Errorf("status = %q, want approved", club.Status)
	}
	if repo.clubs[2].Status != domain.ClubStatusApproved {
		t.Errorf("stored status = %q, want approved", repo.clubs[2].Status)
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	svc, _ := newClubFixture()
	ctx := context.Background()

	if _, err := svc.Approve(ctx, 2); err != nil {
		t.Fatalf("first Approve: %v", err)
	}

	club, err := svc.Approve(ctx, 2)
	if err != nil {
		t.Fatalf("second Approve: %v", err)
	}
	if club.Status != domain.ClubStatusApproved {
		t.Errorf("status = %q, want approved", club.Status)
	}
}

func TestApproveUnknownClub(t *testing.T) {
	svc, _ := newClubFixture()

	if _, err := svc.Approve(context.Background(), 999); !errors.Is(err, ErrClubNotFound) {
		t.Errorf("err = %v, want ErrClubNotFound", err)
	}
}

func TestListPending(t *testing.T) {
	svc, _ := newClubFixture()

	clubs, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(clubs) != 1 || clubs[0].Name != "Film Appreciation" {
		t.Errorf("pending = %+v, want only Film Appreciation", clubs)
	}
}

func TestListForLeaderIncludesOwnedAndLedClubs(t *testing.T) {
	svc, repo := newClubFixture()
	repo.addLeader(2, 10)

	clubs, err := svc.ListForLeader(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListForLeader: %v", err)
	}
	if len(clubs) != 2 {
		t.Errorf("clubs = %d, want owned + led = 2", len(clubs))
	}
}
