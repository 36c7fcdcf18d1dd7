package sheriff

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sheriffduty/clients"
)

// MockSlackClient is a mock implementation of the clients.SlackClient interface
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) PostMessage(ctx context.Context, params clients.SlackPostMessageParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockSlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackAuthTestResponse), args.Error(1)
}
