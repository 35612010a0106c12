package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"craftvale.gg/communityapi/internal/entity"
	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	profileRepo "craftvale.gg/communityapi/internal/modules/profile/repository"
	"craftvale.gg/communityapi/pkg/apperror"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"craftvale.gg/communityapi/pkg/storage"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Notifier delivers a user-visible notification; fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, severity string) error
}

type ProfileService interface {
	// Get returns the user's profile, or (nil, nil) when none exists yet.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	GetByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error)
	// Update applies a partial update. Without an identity or an existing
	// profile it returns apperror.ErrNoProfile before any write. Success
	// emits one success notification; a failed write emits one error
	// notification and returns the error.
	Update(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput, avatar *commonDto.AvatarFile) (*entity.Profile, error)
}

type profileService struct {
	repo         profileRepo.ProfileRepository
	imageStorage storage.ImageStorage
	notifier     Notifier
	sanitizer    *bluemonday.Policy
}

func NewProfileService(repo profileRepo.ProfileRepository, imageStorage storage.ImageStorage, notifier Notifier) ProfileService {
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
		notifier:     notifier,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	profile, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error) {
	profile, err := s.repo.FindByMinecraftUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput, avatar *commonDto.AvatarFile) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrNoProfile
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.ErrNoProfile
	}

	fields := map[string]any{}

	if input.DisplayName != nil {
		name := strings.TrimSpace(s.sanitizer.Sanitize(*input.DisplayName))
		if len(name) < 3 {
			return nil, apperror.ErrInvalidInput
		}
		if len(name) > 50 {
			return nil, apperror.ErrInvalidInput
		}
		fields["display_name"] = name
	}

	if input.MinecraftUsername != nil {
		username := strings.TrimSpace(*input.MinecraftUsername)
		if len(username) < 3 || len(username) > 16 {
			return nil, apperror.ErrInvalidInput
		}
		fields["minecraft_username"] = username
	}

	if avatar != nil && avatar.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		fields["avatar_url"] = url
	}

	if len(fields) == 0 {
		return current, nil
	}

	updated, err := s.repo.PartialUpdate(ctx, userID, fields)
	if err != nil {
		log.Printf("Failed to update profile for user %s: %v", userID, err)
		s.notify(ctx, userID, "Profile update failed", "Your profile changes could not be saved.", entity.SeverityError)
		return nil, err
	}

	s.notify(ctx, userID, "Profile updated", "Your profile changes were saved.", entity.SeveritySuccess)

	return updated, nil
}

func (s *profileService) notify(ctx context.Context, userID uuid.UUID, title, message, severity string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, title, message, severity); err != nil {
		log.Printf("Failed to notify user %s: %v", userID, err)
	}
}
