package identity

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

var _ Store = (*mockStore)(nil)

func (m *mockStore) Lookup(ctx context.Context, path string) (Entry, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(Entry), args.Error(1)
}
