package service

import (
	"context"
	"errors"
	"testing"

	"craftvale.gg/communityapi/internal/entity"
	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	"craftvale.gg/communityapi/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeProfileRepo struct {
	findByUserFunc  func(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	findByUserCalls int

	partialUpdateFunc  func(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error)
	partialUpdateCalls int
	lastFields         map[string]any
}

func (f *fakeProfileRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	f.findByUserCalls++
	if f.findByUserFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.findByUserFunc(ctx, userID)
}

func (f *fakeProfileRepo) FindByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error) {
	f.partialUpdateCalls++
	f.lastFields = fields
	if f.partialUpdateFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.partialUpdateFunc(ctx, userID, fields)
}

type notifyCall struct {
	title    string
	severity string
}

type fakeNotifier struct {
	calls []notifyCall
	err   error
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uuid.UUID, title, message, severity string) error {
	f.calls = append(f.calls, notifyCall{title: title, severity: severity})
	return f.err
}

func strPtr(s string) *string { return &s }

func TestGetMissingProfileIsNotAFault(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, nil, nil)

	profile, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile != nil {
		t.Errorf("profile = %v, want nil", profile)
	}
}

func TestUpdateRejectsWithoutProfile(t *testing.T) {
	t.Run("no identity", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		notifier := &fakeNotifier{}
		svc := NewProfileService(repo, nil, notifier)

		_, err := svc.Update(context.Background(), uuid.Nil, profileDto.UpdateProfileInput{DisplayName: strPtr("Steve")}, nil)
		if !errors.Is(err, apperror.ErrNoProfile) {
			t.Fatalf("err = %v, want ErrNoProfile", err)
		}
		if repo.findByUserCalls != 0 || repo.partialUpdateCalls != 0 {
			t.Errorf("store contacted without an identity: %d reads, %d writes", repo.findByUserCalls, repo.partialUpdateCalls)
		}
		if len(notifier.calls) != 0 {
			t.Errorf("rejected update must not notify, got %d", len(notifier.calls))
		}
	})

	t.Run("no profile row", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		notifier := &fakeNotifier{}
		svc := NewProfileService(repo, nil, notifier)

		_, err := svc.Update(context.Background(), uuid.New(), profileDto.UpdateProfileInput{DisplayName: strPtr("Steve")}, nil)
		if !errors.Is(err, apperror.ErrNoProfile) {
			t.Fatalf("err = %v, want ErrNoProfile", err)
		}
		if repo.partialUpdateCalls != 0 {
			t.Errorf("store written %d times, want 0", repo.partialUpdateCalls)
		}
		if len(notifier.calls) != 0 {
			t.Errorf("rejected update must not notify, got %d", len(notifier.calls))
		}
	})
}

func TestUpdateSuccessNotifiesOnce(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProfileRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: id, DisplayName: "Old"}, nil
		},
		partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Profile, error) {
			return &entity.Profile{UserID: id, DisplayName: "Steve"}, nil
		},
	}
	notifier := &fakeNotifier{}
	svc := NewProfileService(repo, nil, notifier)

	updated, err := svc.Update(context.Background(), userID, profileDto.UpdateProfileInput{DisplayName: strPtr("  Steve ")}, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DisplayName != "Steve" {
		t.Errorf("DisplayName = %q, want the store's echoed value", updated.DisplayName)
	}

	if len(repo.lastFields) != 1 {
		t.Fatalf("transmitted %d fields, want exactly 1: %v", len(repo.lastFields), repo.lastFields)
	}
	if repo.lastFields["display_name"] != "Steve" {
		t.Errorf("display_name = %v, want trimmed %q", repo.lastFields["display_name"], "Steve")
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notified %d times, want exactly 1", len(notifier.calls))
	}
	if notifier.calls[0].severity != entity.SeveritySuccess {
		t.Errorf("severity = %q, want %q", notifier.calls[0].severity, entity.SeveritySuccess)
	}
}

func TestUpdateFailureNotifiesOnce(t *testing.T) {
	userID := uuid.New()
	storeErr := errors.New("store unreachable")
	repo := &fakeProfileRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: id, DisplayName: "Old"}, nil
		},
		partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Profile, error) {
			return nil, storeErr
		},
	}
	notifier := &fakeNotifier{}
	svc := NewProfileService(repo, nil, notifier)

	_, err := svc.Update(context.Background(), userID, profileDto.UpdateProfileInput{DisplayName: strPtr("Steve")}, nil)
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want %v", err, storeErr)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notified %d times, want exactly 1", len(notifier.calls))
	}
	if notifier.calls[0].severity != entity.SeverityError {
		t.Errorf("severity = %q, want %q", notifier.calls[0].severity, entity.SeverityError)
	}
}

func TestUpdateValidatesInput(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProfileRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: id}, nil
		},
	}
	notifier := &fakeNotifier{}
	svc := NewProfileService(repo, nil, notifier)

	tests := []struct {
		name  string
		input profileDto.UpdateProfileInput
	}{
		{"display name too short", profileDto.UpdateProfileInput{DisplayName: strPtr("ab")}},
		{"display name collapses to nothing after sanitizing", profileDto.UpdateProfileInput{DisplayName: strPtr("<script>x</script>")}},
		{"minecraft username too long", profileDto.UpdateProfileInput{MinecraftUsername: strPtr("ThisNameIsWayTooLongForMinecraft")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Update(context.Background(), userID, tt.input, nil); !errors.Is(err, apperror.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	if repo.partialUpdateCalls != 0 {
		t.Errorf("invalid input must not reach the store, got %d writes", repo.partialUpdateCalls)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("invalid input must not notify, got %d", len(notifier.calls))
	}
}
