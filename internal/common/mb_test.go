package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageBrokerPublishConsume(t *testing.T) {
	mb, err := NewMessageBroker(TestRabbitMQ(t))
	assert.NoError(t, err)
	t.Cleanup(func() { mb.Close() })

	err = SetupActivityExchange(mb)
	assert.NoError(t, err)

	msgs, err := mb.Consume(CommentCreatedKey, ActivityExchange, CommentCreatedQueue)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := []byte(`{"comment_id":1,"article_id":1,"author":"butter_bridge","body":"hello"}`)
	err = mb.Publish(ctx, payload, CommentCreatedKey, ActivityExchange)
	assert.NoError(t, err)

	select {
	case msg := <-msgs:
		assert.JSONEq(t, string(payload), string(msg.Body))
		assert.Equal(t, "application/json", msg.ContentType)
		assert.NoError(t, msg.Ack(false))
	case <-ctx.Done():
		t.Fatal("timed out waiting for the published message")
	}
}
