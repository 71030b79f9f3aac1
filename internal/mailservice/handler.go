package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sushihentaime/newsfeed/internal/common"
	"golang.org/x/exp/rand"
)

var defaultRetryPolicy = retryPolicy{
	maxRetries: 5,
	baseDelay:  500 * time.Millisecond,
}

func NewMailService(mb common.MessageConsumer, host, username, password, sender string, port int, moderator string, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:    logger,
		moderator: moderator,
		retry:     defaultRetryPolicy,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// NotifyModerator emails the moderator about every new comment until Close is called.
func (s *MailService) NotifyModerator() {
	msgs, err := s.mb.Consume(common.CommentCreatedKey, common.ActivityExchange, common.CommentCreatedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				s.handleCommentCreated(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping NotifyModerator due to context cancellation")
				return
			}
		}
	}()
}

// handleCommentCreated always acks; an undeliverable notification is logged and dropped.
func (s *MailService) handleCommentCreated(msg amqp.Delivery) {
	defer msg.Ack(false)

	var event common.CommentCreated
	err := json.Unmarshal(msg.Body, &event)
	if err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		return
	}

	for attempt := 0; attempt < s.retry.maxRetries; attempt++ {
		err = s.m.send(s.moderator, event, commentNotificationTemplate)
		if err == nil {
			s.logger.Info("moderator notified", slog.Int("comment_id", event.CommentID))
			return
		}

		delay := time.Duration(rand.Int63n(int64(s.retry.baseDelay) << uint(attempt)))
		s.logger.Info("delaying moderator notification", slog.Int("comment_id", event.CommentID), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return
		}
	}

	s.logger.Error("could not notify moderator", slog.Int("comment_id", event.CommentID), slog.String("error", err.Error()))
}

func (s *MailService) Close() {
	s.cancel()
}
