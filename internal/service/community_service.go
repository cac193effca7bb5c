package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
)

// CommunityService handles the shared community wall
type CommunityService struct {
	communityRepo *repository.CommunityRepository
}

func NewCommunityService(communityRepo *repository.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

// CreateMessage posts a message to the community wall. The author identity
// comes from the caller's token claims rather than a user lookup.
func (s *CommunityService) CreateMessage(userID uuid.UUID, archetype model.Archetype, req model.CreateCommunityMessageRequest) (*model.CommunityMessageResponse, error) {
	msg := &model.CommunityMessage{
		UserID:      userID,
		Content:     req.Content,
		IsAnonymous: req.IsAnonymous,
	}
	if err := s.communityRepo.Create(msg); err != nil {
		return nil, errors.New("failed to create community message")
	}

	// Fill the relation after insert so ToResponse can attribute the author
	msg.User = model.User{ID: userID, Archetype: archetype}
	resp := msg.ToResponse()
	return &resp, nil
}

// GetMessages returns the public feed, newest first, with anonymous authors
// hidden.
func (s *CommunityService) GetMessages(limit, offset int) ([]model.CommunityMessageResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.communityRepo.ListPublic(limit, offset)
	if err != nil {
		return nil, errors.New("failed to list community messages")
	}

	responses := make([]model.CommunityMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}
	return responses, nil
}

// LikeMessage adds one like to a message
func (s *CommunityService) LikeMessage(id uuid.UUID) error {
	if _, err := s.communityRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.communityRepo.IncrementLikes(id)
}

// FlagMessage removes a message from the public feed pending review
func (s *CommunityService) FlagMessage(id uuid.UUID) error {
	if _, err := s.communityRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.communityRepo.Flag(id)
}
