package commentservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/newsfeed/internal/common"
)

type MockMessageProducer struct {
	mock.Mock
}

func (m *MockMessageProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	args := m.Called(ctx, msg, key, exchange)
	return args.Error(0)
}
