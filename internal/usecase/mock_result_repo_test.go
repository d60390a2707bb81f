package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockResultRepo struct {
	mock.Mock
}

func newMockResultRepo(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockResultRepo {
	m := &mockResultRepo{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockResultRepo) Record(ctx context.Context, status entity.Status) error {
	args := that.Called(ctx, status)
	return args.Error(0)
}
