package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/queue"
	"github.com/taruapp/api-taru/internal/repository"
	"github.com/taruapp/api-taru/pkg/notification"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TriggerService ingests trigger events from the webhook and processes them
// asynchronously on the worker.
type TriggerService struct {
	triggerRepo     *repository.TriggerRepository
	userRepo        *repository.UserRepository
	checkInRepo     *repository.CheckInRepository
	interventionSvc *InterventionService
	enqueuer        queue.Enqueuer
	pusher          notification.Sender
	pushEnabled     bool
}

func NewTriggerService(
	triggerRepo *repository.TriggerRepository,
	userRepo *repository.UserRepository,
	checkInRepo *repository.CheckInRepository,
	interventionSvc *InterventionService,
	enqueuer queue.Enqueuer,
	pusher notification.Sender,
	pushEnabled bool,
) *TriggerService {
	return &TriggerService{
		triggerRepo:     triggerRepo,
		userRepo:        userRepo,
		checkInRepo:     checkInRepo,
		interventionSvc: interventionSvc,
		enqueuer:        enqueuer,
		pusher:          pusher,
		pushEnabled:     pushEnabled,
	}
}

// ProcessTrigger persists the trigger event and queues it for the worker.
// The caller gets the stored row back immediately; selection and delivery
// happen asynchronously.
func (s *TriggerService) ProcessTrigger(ctx context.Context, req model.TriggerEventRequest) (*model.TriggerEvent, error) {
	payload := req.Payload
	if payload == nil {
		payload = datatypes.JSON([]byte("{}"))
	}

	event := &model.TriggerEvent{
		UserID:    req.UserID,
		EventType: req.EventType,
		Payload:   payload,
	}
	if err := s.triggerRepo.Create(event); err != nil {
		return nil, errors.New("failed to store trigger event")
	}

	task, err := queue.NewTriggerTask(queue.TriggerTaskPayload{
		TriggerEventID: event.ID,
		UserID:         event.UserID,
		EventType:      event.EventType,
		Payload:        event.Payload,
	})
	if err != nil {
		return nil, err
	}
	if err := s.enqueuer.Enqueue(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to enqueue trigger task: %w", err)
	}

	return event, nil
}

// GetTriggerEvents returns recent trigger events for a user
func (s *TriggerService) GetTriggerEvents(userID uuid.UUID, limit int) ([]model.TriggerEvent, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.triggerRepo.ListByUser(userID, limit)
}

// HandleTriggerTask is the worker-side handler for queued trigger events. A
// returned error requeues the task for retry; a trigger referencing a user
// that no longer exists is logged and dropped instead, since no retry can
// make it valid.
func (s *TriggerService) HandleTriggerTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.TriggerTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal trigger task payload: %v: %w", err, asynq.SkipRetry)
	}

	user, err := s.userRepo.FindByID(payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️  User not found for trigger event %s, dropping", payload.TriggerEventID)
			return nil
		}
		return err
	}

	recentCheckIn, err := s.checkInRepo.FindLatest(payload.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		recentCheckIn = nil
	}

	intervention := s.interventionSvc.SelectIntervention(payload.EventType, recentCheckIn)
	notif := s.interventionSvc.FormatNotification(user.Archetype, intervention)

	log.Printf("🔔 Prepared %s intervention (%s) for user %s on event %s",
		intervention.Type, intervention.Priority, user.ID, payload.EventType)

	response, err := json.Marshal(map[string]interface{}{
		"notification": notif,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	if err := s.triggerRepo.MarkProcessed(payload.TriggerEventID, string(intervention.Type), response, time.Now()); err != nil {
		return err
	}

	// Delivery failures are logged only; the intervention is already
	// recorded and a retry would re-select it from scratch.
	if s.pushEnabled && user.PushToken != "" && s.pusher != nil {
		if err := s.pusher.Send(ctx, user.PushToken, notif.Title, notif.Body, notif.Data); err != nil {
			log.Printf("⚠️  Failed to send push notification to user %s: %v", user.ID, err)
		}
	}

	return nil
}
