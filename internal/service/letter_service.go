package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
)

// LetterService handles loved-one letters
type LetterService struct {
	letterRepo *repository.LetterRepository
}

func NewLetterService(letterRepo *repository.LetterRepository) *LetterService {
	return &LetterService{letterRepo: letterRepo}
}

// CreateLetter stores a new letter
func (s *LetterService) CreateLetter(userID uuid.UUID, req model.CreateLetterRequest) (*model.LovedOneLetter, error) {
	letter := &model.LovedOneLetter{
		UserID:    userID,
		Recipient: req.Recipient,
		Content:   req.Content,
		AudioURL:  req.AudioURL,
	}
	if err := s.letterRepo.Create(letter); err != nil {
		return nil, errors.New("failed to create letter")
	}
	return letter, nil
}

// GetLetters returns the user's letters, newest first
func (s *LetterService) GetLetters(userID uuid.UUID) ([]model.LovedOneLetter, error) {
	return s.letterRepo.ListByUser(userID)
}

// GetLetter returns a single letter owned by the user
func (s *LetterService) GetLetter(id, userID uuid.UUID) (*model.LovedOneLetter, error) {
	letter, err := s.letterRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return letter, nil
}

// UpdateLetter applies a partial update to a letter the user owns. Marking a
// letter delivered stamps the delivery time once.
func (s *LetterService) UpdateLetter(id, userID uuid.UUID, req model.UpdateLetterRequest) (*model.LovedOneLetter, error) {
	letter, err := s.letterRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.AudioURL != "" {
		updates["audio_url"] = req.AudioURL
	}
	if req.IsDelivered != nil {
		updates["is_delivered"] = *req.IsDelivered
		if *req.IsDelivered && !letter.IsDelivered {
			updates["delivered_at"] = time.Now()
		}
	}
	if len(updates) > 0 {
		if err := s.letterRepo.Update(letter.ID, updates); err != nil {
			return nil, errors.New("failed to update letter")
		}
	}

	return s.letterRepo.FindOwned(id, userID)
}

// DeleteLetter removes a letter the user owns
func (s *LetterService) DeleteLetter(id, userID uuid.UUID) error {
	if _, err := s.letterRepo.FindOwned(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.letterRepo.Delete(id)
}
