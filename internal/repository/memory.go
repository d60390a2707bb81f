package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type memoryResult struct {
	mu    sync.Mutex
	tally entity.Tally
}

// NewMemoryResultRepository - keeps the tally in process memory, used when Redis is disabled.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{}
}

func (that *memoryResult) Record(_ context.Context, status entity.Status) error {
	if !status.IsFinished() {
		return fmt.Errorf("%w: %s", ErrUnfinishedGame, status)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally.Add(status)

	return nil
}

func (that *memoryResult) Totals(_ context.Context) (entity.Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tally, nil
}
