package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
)

// TypeTriggerProcess is the task type for asynchronous trigger processing
const TypeTriggerProcess = "trigger:process"

// triggerMaxRetry bounds retries for a trigger job; after exhaustion the
// trigger event row is left unprocessed.
const triggerMaxRetry = 3

// TriggerTaskPayload is the job payload carried from the webhook ingress to
// the worker process.
type TriggerTaskPayload struct {
	TriggerEventID uuid.UUID      `json:"trigger_event_id"`
	UserID         uuid.UUID      `json:"user_id"`
	EventType      string         `json:"event_type"`
	Payload        datatypes.JSON `json:"payload,omitempty"`
}

// NewTriggerTask builds the asynq task for a trigger event
func NewTriggerTask(payload TriggerTaskPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trigger task payload: %w", err)
	}
	return asynq.NewTask(TypeTriggerProcess, data, asynq.MaxRetry(triggerMaxRetry)), nil
}

// Enqueuer abstracts job submission so services can be tested without Redis
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

// Client wraps the asynq client as an Enqueuer
type Client struct {
	client *asynq.Client
}

// NewClient creates a queue client against the given Redis instance
func NewClient(addr, password string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password}),
	}
}

// Enqueue submits a task for asynchronous processing
func (c *Client) Enqueue(ctx context.Context, task *asynq.Task) error {
	_, err := c.client.EnqueueContext(ctx, task)
	return err
}

// Close releases the underlying Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}
