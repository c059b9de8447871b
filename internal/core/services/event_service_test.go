package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
)

func newEventFixture() (*EventService, *fakeEventRepo, *fakeRegistrationRepo, *fakeClubRepo) {
	eventRepo := newFakeEventRepo(
		&models.Event{ID: 1, ClubID: 1, Title: "Blitz Night", Date: time.Now().Add(48 * time.Hour), Location: "MU 230", Price: 0},
		&models.Event{ID: 2, ClubID: 1, Title: "Grandmaster Dinner", Date: time.Now().Add(72 * time.Hour), Location: "Old Main", Price: 25},
	)
	registrationRepo := newFakeRegistrationRepo()
	clubRepo := newFakeClubRepo(
		&models.Club{ID: 1, Name: "Chess Club", Status: domain.ClubStatusApproved, OwnerID: 10},
	)
	return NewEventService(eventRepo, registrationRepo, clubRepo), eventRepo, registrationRepo, clubRepo
}

func TestListFreeOnly(t *testing.T) {
	svc, _, _, _ := newEventFixture()

	events, err := svc.List(context.Background(), &ListEventsInput{FreeOnly: true, Limit: 100})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if !events[0].IsFree {
		t.Error("free event not marked IsFree")
	}
}

func TestCreateRequiresExistingClub(t *testing.T) {
	svc, _, _, _ := newEventFixture()

	_, err := svc.Create(context.Background(), &CreateEventInput{
		ClubID:   999,
		Title:    "Ghost Meetup",
		Date:     time.Now(),
		Location: "Nowhere",
	})
	if !errors.Is(err, ErrClubNotFound) {
		t.Errorf("err = %v, want ErrClubNotFound", err)
	}
}

func TestCreatePersistsEvent(t *testing.T) {
	svc, repo, _, _ := newEventFixture()

	event, err := svc.Create(context.Background(), &CreateEventInput{
		ClubID:   1,
		Title:    "Simul Exhibition",
		Date:     time.Now().Add(24 * time.Hour),
		Location: "MU 230",
		Price:    5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.ID == 0 {
		t.Error("event not assigned an ID")
	}
	if _, ok := repo.events[event.ID]; !ok {
		t.Error("event not persisted")
	}
}

func TestRegisterCreatesActiveRegistration(t *testing.T) {
	svc, _, repo, _ := newEventFixture()

	result, err := svc.Register(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.AlreadyRegistered {
		t.Error("first registration reported AlreadyRegistered")
	}
	if result.Status != domain.RegistrationStatusRegistered {
		t.Errorf("status = %q, want registered", result.Status)
	}
	if len(repo.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(repo.rows))
	}
}

func TestRegisterTwiceIsNoOp(t *testing.T) {
	svc, _, repo, _ := newEventFixture()
	ctx := context.Background()

	first, err := svc.Register(ctx, 5, 1)
	if err != nil {
		t.Fatalf("first Register: %v", err)
	}

	second, err := svc.Register(ctx, 5, 1)
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if !second.AlreadyRegistered {
		t.Error("second registration did not report AlreadyRegistered")
	}
	if second.ID != first.ID {
		t.Errorf("second ID = %d, want existing %d", second.ID, first.ID)
	}
	if len(repo.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(repo.rows))
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, _, _, _ := newEventFixture()

	if _, err := svc.Register(context.Background(), 5, 999); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestCancelThenReRegisterCreatesNewRow(t *testing.T) {
	svc, _, repo, _ := newEventFixture()
	ctx := context.Background()

	first, err := svc.Register(ctx, 5, 1)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Cancel(ctx, 5, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if repo.rows[0].Status != domain.RegistrationStatusCancelled {
		t.Fatalf("status after cancel = %q, want cancelled", repo.rows[0].Status)
	}

	second, err := svc.Register(ctx, 5, 1)
	if err != nil {
		t.Fatalf("re-Register: %v", err)
	}
	if second.AlreadyRegistered {
		t.Error("re-registration after cancel reported AlreadyRegistered")
	}
	if second.ID == first.ID {
		t.Error("re-registration reused the cancelled row")
	}
	if len(repo.rows) != 2 {
		t.Errorf("rows = %d, want cancelled history + new row", len(repo.rows))
	}
}

func TestCancelWithoutRegistrationIsNoOp(t *testing.T) {
	svc, _, repo, _ := newEventFixture()

	if err := svc.Cancel(context.Background(), 5, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.rows))
	}
}
