package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
)

// JournalService handles wilderness journal and gratitude entries
type JournalService struct {
	journalRepo   *repository.JournalRepository
	gratitudeRepo *repository.GratitudeRepository
}

func NewJournalService(journalRepo *repository.JournalRepository, gratitudeRepo *repository.GratitudeRepository) *JournalService {
	return &JournalService{
		journalRepo:   journalRepo,
		gratitudeRepo: gratitudeRepo,
	}
}

// CreateEntry stores a new journal entry. Entries default to private.
func (s *JournalService) CreateEntry(userID uuid.UUID, req model.CreateJournalEntryRequest) (*model.JournalEntry, error) {
	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	entry := &model.JournalEntry{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		IsPrivate: isPrivate,
	}
	if err := s.journalRepo.Create(entry); err != nil {
		return nil, errors.New("failed to create journal entry")
	}
	return entry, nil
}

// GetEntries returns the user's journal entries, newest first
func (s *JournalService) GetEntries(userID uuid.UUID, limit, offset int) ([]model.JournalEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListByUser(userID, limit, offset)
}

// GetEntry returns a single journal entry owned by the user
func (s *JournalService) GetEntry(id, userID uuid.UUID) (*model.JournalEntry, error) {
	entry, err := s.journalRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// UpdateEntry applies a partial update to an entry the user owns
func (s *JournalService) UpdateEntry(id, userID uuid.UUID, req model.UpdateJournalEntryRequest) (*model.JournalEntry, error) {
	entry, err := s.journalRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Mood != "" {
		updates["mood"] = req.Mood
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.IsPrivate != nil {
		updates["is_private"] = *req.IsPrivate
	}
	if len(updates) > 0 {
		if err := s.journalRepo.Update(entry.ID, updates); err != nil {
			return nil, errors.New("failed to update journal entry")
		}
	}

	return s.journalRepo.FindOwned(id, userID)
}

// DeleteEntry removes a journal entry the user owns
func (s *JournalService) DeleteEntry(id, userID uuid.UUID) error {
	if _, err := s.journalRepo.FindOwned(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.journalRepo.Delete(id)
}

// CreateGratitudeEntry stores a new gratitude entry
func (s *JournalService) CreateGratitudeEntry(userID uuid.UUID, req model.CreateGratitudeEntryRequest) (*model.GratitudeEntry, error) {
	entry := &model.GratitudeEntry{
		UserID:   userID,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := s.gratitudeRepo.Create(entry); err != nil {
		return nil, errors.New("failed to create gratitude entry")
	}
	return entry, nil
}

// GetGratitudeEntries returns the user's gratitude entries, newest first
func (s *JournalService) GetGratitudeEntries(userID uuid.UUID, limit, offset int) ([]model.GratitudeEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.gratitudeRepo.ListByUser(userID, limit, offset)
}

// DeleteGratitudeEntry removes a gratitude entry the user owns
func (s *JournalService) DeleteGratitudeEntry(id, userID uuid.UUID) error {
	if _, err := s.gratitudeRepo.FindOwned(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.gratitudeRepo.Delete(id)
}
