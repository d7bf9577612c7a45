package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"dayscount-backend/internal/mood/domain"
	"dayscount-backend/internal/mood/repository"
)

var validMoods = map[string]bool{
	"great": true,
	"good":  true,
	"okay":  true,
	"low":   true,
	"rough": true,
}

// MoodUsecase defines the mood journal business logic interface
type MoodUsecase interface {
	LogMood(userID, mood, note string, loggedAt *string) (*domain.MoodEntry, error)
	GetEntries(userID string, sinceDays, limit, offset int) ([]*domain.MoodEntry, int64, error)
	UpdateEntry(userID, entryID string, mood, note *string) (*domain.MoodEntry, error)
	DeleteEntry(userID, entryID string) error
}

type moodUsecase struct {
	moodRepo repository.MoodRepository
}

// NewMoodUsecase creates a new instance of moodUsecase
func NewMoodUsecase(moodRepo repository.MoodRepository) MoodUsecase {
	return &moodUsecase{moodRepo: moodRepo}
}

func (u *moodUsecase) LogMood(userID, mood, note string, loggedAt *string) (*domain.MoodEntry, error) {
	if !validMoods[mood] {
		return nil, errors.New("invalid mood")
	}

	entry := &domain.MoodEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		Mood:     mood,
		Note:     note,
		LoggedAt: time.Now(),
	}

	if loggedAt != nil && *loggedAt != "" {
		if t, err := time.Parse(time.RFC3339, *loggedAt); err == nil {
			entry.LoggedAt = t
		}
	}

	if err := u.moodRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *moodUsecase) GetEntries(userID string, sinceDays, limit, offset int) ([]*domain.MoodEntry, int64, error) {
	var since *time.Time
	if sinceDays > 0 {
		t := time.Now().AddDate(0, 0, -sinceDays)
		since = &t
	}
	return u.moodRepo.FindByUserID(userID, since, limit, offset)
}

func (u *moodUsecase) UpdateEntry(userID, entryID string, mood, note *string) (*domain.MoodEntry, error) {
	entry, err := u.ownedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if mood != nil {
		if !validMoods[*mood] {
			return nil, errors.New("invalid mood")
		}
		entry.Mood = *mood
	}
	if note != nil {
		entry.Note = *note
	}

	if err := u.moodRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *moodUsecase) DeleteEntry(userID, entryID string) error {
	entry, err := u.ownedEntry(userID, entryID)
	if err != nil {
		return err
	}
	return u.moodRepo.Delete(entry.ID)
}

func (u *moodUsecase) ownedEntry(userID, entryID string) (*domain.MoodEntry, error) {
	entry, err := u.moodRepo.FindByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("entry not found")
	}
	if entry.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return entry, nil
}
