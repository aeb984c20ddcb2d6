package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrEmptyMessage   = errors.New("message must not be empty")
	ErrMessageTooLong = errors.New("message must be at most 1000 characters")
	ErrLinkNotFound   = errors.New("no active link for this slug")
)

const (
	maxMessageLen   = 1000
	messageLifetime = 24 * time.Hour
	cooldownWindow  = 5 * time.Minute
)

// CooldownError is returned when a sender identity is still inside the
// cooldown window.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d more minute(s) before sending again", remainingMinutes(e.RetryAfter))
}

// LinkResolver resolves active links by slug.
type LinkResolver interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.LinkPreview, error)
}

// MessageWriter persists messages.
type MessageWriter interface {
	Save(ctx context.Context, linkID uuid.UUID, text, senderIP string, createdAt, expiresAt time.Time) (*models.MessageDB, error)
}

// MessageReader reads the active (unexpired) message view.
type MessageReader interface {
	ListActiveByLinkIDs(ctx context.Context, linkIDs []uuid.UUID, now time.Time, limit int) ([]models.MessageDB, error)
	CountActiveByLinkIDs(ctx context.Context, linkIDs []uuid.UUID, now time.Time) (int, error)
}

// CooldownStore reads and writes per-identity last-send instants. No
// other component writes these records.
type CooldownStore interface {
	GetLastSend(ctx context.Context, identity string) (*time.Time, error)
	SetLastSend(ctx context.Context, identity string, at time.Time) error
}

// IdentityResolver derives a best-effort identity for an anonymous sender.
type IdentityResolver interface {
	Resolve(ctx context.Context) string
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MessageService governs message creation, cooldown enforcement and the
// expiry-filtered message view.
type MessageService struct {
	links       LinkResolver
	writer      MessageWriter
	reader      MessageReader
	cooldown    CooldownStore
	identity    IdentityResolver
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	links LinkResolver,
	writer MessageWriter,
	reader MessageReader,
	cooldown CooldownStore,
	identity IdentityResolver,
	kafkaWriter KafkaWriter,
) *MessageService {
	return NewMessageServiceWithClock(links, writer, reader, cooldown, identity, kafkaWriter, time.Now)
}

// NewMessageServiceWithClock creates a MessageService with an injected clock.
func NewMessageServiceWithClock(
	links LinkResolver,
	writer MessageWriter,
	reader MessageReader,
	cooldown CooldownStore,
	identity IdentityResolver,
	kafkaWriter KafkaWriter,
	now func() time.Time,
) *MessageService {
	return &MessageService{
		links:       links,
		writer:      writer,
		reader:      reader,
		cooldown:    cooldown,
		identity:    identity,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// Send validates and stores an anonymous message for the link behind slug.
// The cooldown record is written only after the message is durably
// created, so a failed send never throttles the sender.
func (svc *MessageService) Send(ctx context.Context, slug, text string) (*models.MessageDB, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	link, err := svc.links.GetActiveBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to resolve link", "slug", slug, "err", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}

	identity := svc.identity.Resolve(ctx)

	now := svc.now()
	if retryAfter, err := svc.remaining(ctx, identity, now); err != nil {
		logger.Log.Errorw("failed to check cooldown", "identity", identity, "err", err)
		return nil, err
	} else if retryAfter > 0 {
		return nil, &CooldownError{RetryAfter: retryAfter}
	}

	message, err := svc.writer.Save(ctx, link.LinkID, text, identity, now, now.Add(messageLifetime))
	if err != nil {
		logger.Log.Errorw("failed to save message", "link_id", link.LinkID, "err", err)
		return nil, err
	}

	if err := svc.cooldown.SetLastSend(ctx, identity, now); err != nil {
		// The message is already durable; a lost throttle record only
		// weakens the next check, it must not fail the send.
		logger.Log.Errorw("failed to record cooldown", "identity", identity, "err", err)
	}

	svc.publishAccepted(ctx, message, link.OwnerID)

	return message, nil
}

// CooldownRemaining reports how long the sender identity must still wait.
// Zero means not throttled. Pure query, safe to poll.
func (svc *MessageService) CooldownRemaining(ctx context.Context, identity string) (time.Duration, error) {
	return svc.remaining(ctx, identity, svc.now())
}

func (svc *MessageService) remaining(ctx context.Context, identity string, now time.Time) (time.Duration, error) {
	last, err := svc.cooldown.GetLastSend(ctx, identity)
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	elapsed := now.Sub(*last)
	if elapsed >= cooldownWindow {
		return 0, nil
	}
	return cooldownWindow - elapsed, nil
}

// ListActive returns unexpired messages for the links, newest first.
// An empty link set short-circuits without touching the datastore.
func (svc *MessageService) ListActive(ctx context.Context, linkIDs []uuid.UUID, limit int) ([]models.MessageDB, error) {
	if len(linkIDs) == 0 {
		return []models.MessageDB{}, nil
	}

	messages, err := svc.reader.ListActiveByLinkIDs(ctx, linkIDs, svc.now(), limit)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "err", err)
		return nil, err
	}
	return messages, nil
}

// CountActive returns the number of unexpired messages for the links.
func (svc *MessageService) CountActive(ctx context.Context, linkIDs []uuid.UUID) (int, error) {
	if len(linkIDs) == 0 {
		return 0, nil
	}

	count, err := svc.reader.CountActiveByLinkIDs(ctx, linkIDs, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to count messages", "err", err)
		return 0, err
	}
	return count, nil
}

// publishAccepted publishes a message-accepted event to Kafka, best effort.
func (svc *MessageService) publishAccepted(ctx context.Context, message *models.MessageDB, ownerID uuid.UUID) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "message_id", message.ID)
		return
	}

	event := models.MessageAcceptedEvent{
		EventID:   uuid.NewString(),
		MessageID: message.ID.String(),
		LinkID:    message.LinkID.String(),
		OwnerID:   ownerID.String(),
		Timestamp: message.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "message_id", message.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "message_id", message.ID, "error", err)
	} else {
		logger.Log.Infow("message event published to Kafka", "message_id", message.ID)
	}
}
