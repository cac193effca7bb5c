package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/queue"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
)

// --- Fakes ---

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, task *asynq.Task) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, task)
	return nil
}

type fakeSender struct {
	sent []sentNotification
	err  error
}

type sentNotification struct {
	token string
	title string
	body  string
	data  map[string]string
}

func (f *fakeSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentNotification{token: token, title: title, body: body, data: data})
	return nil
}

func newTriggerService(db *gorm.DB, enqueuer queue.Enqueuer, sender *fakeSender, pushEnabled bool) *TriggerService {
	return NewTriggerService(
		repository.NewTriggerRepository(db),
		repository.NewUserRepository(db),
		repository.NewCheckInRepository(db),
		NewInterventionService(nil),
		enqueuer,
		sender,
		pushEnabled,
	)
}

func TestProcessTriggerStoresAndEnqueues(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	enqueuer := &fakeEnqueuer{}
	svc := newTriggerService(db, enqueuer, &fakeSender{}, false)

	event, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "late_night_usage",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Nil(t, event.ProcessedAt)
	assert.JSONEq(t, "{}", string(event.Payload))

	require.Len(t, enqueuer.tasks, 1)
	task := enqueuer.tasks[0]
	assert.Equal(t, queue.TypeTriggerProcess, task.Type())

	var payload queue.TriggerTaskPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, event.ID, payload.TriggerEventID)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, "late_night_usage", payload.EventType)
}

func TestProcessTriggerEnqueueFailure(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	enqueuer := &fakeEnqueuer{err: assert.AnError}
	svc := newTriggerService(db, enqueuer, &fakeSender{}, false)

	_, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "app_opened",
	})
	assert.Error(t, err)
}

func handleTask(t *testing.T, svc *TriggerService, payload queue.TriggerTaskPayload) error {
	t.Helper()
	task, err := queue.NewTriggerTask(payload)
	require.NoError(t, err)
	return svc.HandleTriggerTask(context.Background(), task)
}

func TestHandleTriggerTaskMarksProcessed(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSage)
	svc := newTriggerService(db, &fakeEnqueuer{}, &fakeSender{}, false)

	event, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "late_night_usage",
	})
	require.NoError(t, err)

	err = handleTask(t, svc, queue.TriggerTaskPayload{
		TriggerEventID: event.ID,
		UserID:         user.ID,
		EventType:      event.EventType,
	})
	require.NoError(t, err)

	var saved model.TriggerEvent
	require.NoError(t, db.Where("id = ?", event.ID).First(&saved).Error)
	assert.Equal(t, "breathing", saved.InterventionID)
	require.NotNil(t, saved.ProcessedAt)
	assert.WithinDuration(t, time.Now(), *saved.ProcessedAt, 5*time.Second)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(saved.Response, &response))
	assert.Contains(t, response, "notification")
	assert.Contains(t, response, "timestamp")

	var notif model.Notification
	require.NoError(t, json.Unmarshal(response["notification"], &notif))
	assert.Equal(t, "TARU Moment", notif.Title)
	assert.Equal(t, "Center yourself, Sage. Find your calm.", notif.Body)
}

func TestHandleTriggerTaskEscalatesOnIntenseCheckIn(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeLover)
	require.NoError(t, db.Create(&model.CheckIn{
		UserID:    user.ID,
		Part:      "The Exile",
		Emotion:   "overwhelmed",
		Quadrant:  "high-energy",
		Intensity: 9,
	}).Error)

	svc := newTriggerService(db, &fakeEnqueuer{}, &fakeSender{}, false)
	event, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "app_opened",
	})
	require.NoError(t, err)

	require.NoError(t, handleTask(t, svc, queue.TriggerTaskPayload{
		TriggerEventID: event.ID,
		UserID:         user.ID,
		EventType:      event.EventType,
	}))

	var saved model.TriggerEvent
	require.NoError(t, db.Where("id = ?", event.ID).First(&saved).Error)
	assert.Equal(t, "letter", saved.InterventionID)
}

func TestHandleTriggerTaskDropsMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTriggerService(db, &fakeEnqueuer{}, &fakeSender{}, false)

	// A trigger referencing a deleted user is dropped without error so the
	// queue never retries it.
	err := handleTask(t, svc, queue.TriggerTaskPayload{
		TriggerEventID: uuid.New(),
		UserID:         uuid.New(),
		EventType:      "app_opened",
	})
	assert.NoError(t, err)
}

func TestHandleTriggerTaskSendsPush(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSeeker)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("push_token", "device-token-1").Error)

	sender := &fakeSender{}
	svc := newTriggerService(db, &fakeEnqueuer{}, sender, true)

	event, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "hrv_spike",
	})
	require.NoError(t, err)

	require.NoError(t, handleTask(t, svc, queue.TriggerTaskPayload{
		TriggerEventID: event.ID,
		UserID:         user.ID,
		EventType:      event.EventType,
	}))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "device-token-1", sender.sent[0].token)
	assert.Equal(t, "TARU Moment", sender.sent[0].title)
	assert.Equal(t, "Seeker, find stillness in this moment", sender.sent[0].body)
	assert.Equal(t, "breathing", sender.sent[0].data["type"])
}

func TestHandleTriggerTaskPushFailureStillSucceeds(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSeeker)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("push_token", "device-token-2").Error)

	sender := &fakeSender{err: assert.AnError}
	svc := newTriggerService(db, &fakeEnqueuer{}, sender, true)

	event, err := svc.ProcessTrigger(context.Background(), model.TriggerEventRequest{
		UserID:    user.ID,
		EventType: "app_opened",
	})
	require.NoError(t, err)

	err = handleTask(t, svc, queue.TriggerTaskPayload{
		TriggerEventID: event.ID,
		UserID:         user.ID,
		EventType:      event.EventType,
	})
	assert.NoError(t, err)

	var saved model.TriggerEvent
	require.NoError(t, db.Where("id = ?", event.ID).First(&saved).Error)
	assert.NotNil(t, saved.ProcessedAt)
}
