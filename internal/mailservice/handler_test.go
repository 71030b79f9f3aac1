package mailservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/newsfeed/internal/common"
)

const testModerator = "moderator@example.com"

func testEvent() common.CommentCreated {
	return common.CommentCreated{
		CommentID: 19,
		ArticleID: 1,
		Author:    "butter_bridge",
		Body:      "Great read.",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func deliveries(bodies ...[]byte) <-chan amqp.Delivery {
	ch := make(chan amqp.Delivery, len(bodies))
	for _, body := range bodies {
		ch <- amqp.Delivery{Body: body}
	}
	close(ch)
	return ch
}

func newTestMailService(mc common.MessageConsumer, m Mailer, logger MailLogger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mc,
		m:         m,
		logger:    logger,
		moderator: testModerator,
		retry:     retryPolicy{maxRetries: 3, baseDelay: time.Millisecond},
		ctx:       ctx,
		cancel:    cancel,
	}
}

func TestNotifyModerator(t *testing.T) {
	event := testEvent()
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	mockMC := new(MockMessageConsumer)
	mockMC.On("Consume", common.CommentCreatedKey, common.ActivityExchange, common.CommentCreatedQueue).Return(deliveries(body), nil)

	mockMailer := new(MockMailer)
	mockMailer.On("send", testModerator, event, commentNotificationTemplate).Return(nil)

	notified := make(chan struct{})
	mockLogger := new(MockLogger)
	mockLogger.On("Info", "moderator notified", mock.Anything).Return().Run(func(mock.Arguments) {
		close(notified)
	})

	s := newTestMailService(mockMC, mockMailer, mockLogger)
	t.Cleanup(s.Close)

	s.NotifyModerator()

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("moderator was not notified")
	}

	mockLogger.AssertExpectations(t)
	mockMC.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestNotifyModeratorConsumeError(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMC.On("Consume", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("channel closed"))

	mockLogger := new(MockLogger)
	mockLogger.On("Error", "could not consume message", mock.Anything).Return()

	s := newTestMailService(mockMC, new(MockMailer), mockLogger)
	t.Cleanup(s.Close)

	s.NotifyModerator()

	mockMC.AssertExpectations(t)
	mockLogger.AssertExpectations(t)
}

func TestHandleCommentCreatedRetries(t *testing.T) {
	event := testEvent()
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	mockMailer := new(MockMailer)
	mockMailer.On("send", testModerator, event, commentNotificationTemplate).Return(errors.New("smtp down"))

	mockLogger := new(MockLogger)
	mockLogger.On("Info", "delaying moderator notification", mock.Anything).Return()
	mockLogger.On("Error", "could not notify moderator", mock.Anything).Return()

	s := newTestMailService(new(MockMessageConsumer), mockMailer, mockLogger)
	t.Cleanup(s.Close)

	s.handleCommentCreated(amqp.Delivery{Body: body})

	mockMailer.AssertNumberOfCalls(t, "send", 3)
	mockLogger.AssertNumberOfCalls(t, "Info", 3)
	mockLogger.AssertCalled(t, "Error", "could not notify moderator", mock.Anything)
}

func TestHandleCommentCreatedBadPayload(t *testing.T) {
	mockMailer := new(MockMailer)

	mockLogger := new(MockLogger)
	mockLogger.On("Error", "could not unmarshal message", mock.Anything).Return()

	s := newTestMailService(new(MockMessageConsumer), mockMailer, mockLogger)
	t.Cleanup(s.Close)

	s.handleCommentCreated(amqp.Delivery{Body: []byte("not json")})

	mockMailer.AssertNotCalled(t, "send", mock.Anything, mock.Anything, mock.Anything)
	mockLogger.AssertExpectations(t)
}
