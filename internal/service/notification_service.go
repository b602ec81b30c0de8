package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NotificationKind identifies the template the external mailer renders
type NotificationKind string

const (
	NotificationConfirmation NotificationKind = "confirmation"
	NotificationReschedule   NotificationKind = "reschedule"
	NotificationCancellation NotificationKind = "cancellation"
)

const (
	// Redis list the external notification worker consumes
	notificationOutboxKey = "notifications:outbox"

	notificationTimeout = 5 * time.Second
)

// Notification is the payload handed to the external delivery worker
type Notification struct {
	Recipient string                 `json:"recipient"`
	Kind      NotificationKind       `json:"kind"`
	Payload   map[string]interface{} `json:"payload"`
	QueuedAt  time.Time              `json:"queued_at"`
}

// NotificationService enqueues appointment notifications for out-of-band
// delivery. Sends are best-effort: they run only after the appointment
// transaction has committed, and a failed enqueue is logged, never surfaced
// to the API caller.
type NotificationService interface {
	Send(ctx context.Context, recipient string, kind NotificationKind, payload map[string]interface{})
}

type notificationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewNotificationService(redisClient *redis.Client, log *logrus.Logger) NotificationService {
	return &notificationService{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *notificationService) Send(ctx context.Context, recipient string, kind NotificationKind, payload map[string]interface{}) {
	// Detach from the request context so a caller-side timeout after commit
	// does not drop the notification.
	sendCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	n := Notification{
		Recipient: recipient,
		Kind:      kind,
		Payload:   payload,
		QueuedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(n)
	if err != nil {
		s.log.Warnf("Failed to marshal %s notification for %s: %+v", kind, recipient, err)
		return
	}

	if err := s.redisClient.LPush(sendCtx, notificationOutboxKey, data).Err(); err != nil {
		s.log.Warnf("Failed to enqueue %s notification for %s (non-fatal): %+v", kind, recipient, err)
		return
	}

	s.log.Infof("Notification queued: kind=%s, recipient=%s", kind, recipient)
}
