package queue

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// NewServer creates the asynq worker server. Retries back off exponentially
// starting at one second: 1s, 2s, 4s.
func NewServer(addr, password string) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: addr, Password: password},
		asynq.Config{
			Concurrency: 5,
			RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
				return time.Duration(1<<n) * time.Second
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("❌ Task %s failed: %v", task.Type(), err)
			}),
		},
	)
}
