package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Get(ctx context.Context, projectID, versionID string) (json.RawMessage, error) {
	args := m.Called(ctx, projectID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockContentRepository) Put(ctx context.Context, projectID, versionID string, content json.RawMessage) error {
	args := m.Called(ctx, projectID, versionID, content)
	return args.Error(0)
}

func (m *MockContentRepository) ListByProject(ctx context.Context, projectID string) (map[string]json.RawMessage, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}
