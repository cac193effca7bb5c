package notification

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender delivers a formatted notification to a single device token.
// Delivery is best-effort: callers treat failures as log-and-continue.
type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// FCMSender sends push notifications through Firebase Cloud Messaging
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender creates an FCM sender. A missing or broken credentials file
// disables push delivery instead of blocking startup.
func NewFCMSender(credentialsFile string) (*FCMSender, error) {
	if credentialsFile == "" {
		log.Println("⚠️ Firebase credentials not provided, push notifications disabled")
		return nil, nil
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("⚠️ Failed to initialize Firebase app: %v (push notifications disabled)", err)
		return nil, nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("⚠️ Failed to get messaging client: %v", err)
		return nil, nil
	}

	log.Println("✅ Firebase FCM initialized")
	return &FCMSender{client: client}, nil
}

// Send delivers an intervention notification to a device token
func (s *FCMSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if s == nil || s.client == nil {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("error sending push notification: %w", err)
	}
	return nil
}
