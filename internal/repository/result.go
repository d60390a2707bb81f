package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var ErrUnfinishedGame = errors.New("game is not finished")

const resultKeyPrefix = "results:"

type ResultRepository interface {
	Record(ctx context.Context, status entity.Status) error
	Totals(ctx context.Context) (entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Record(ctx context.Context, status entity.Status) error {
	if !status.IsFinished() {
		return fmt.Errorf("%w: %s", ErrUnfinishedGame, status)
	}

	if err := that.client.Incr(ctx, resultKey(status)).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbResult) Totals(ctx context.Context) (entity.Tally, error) {
	values, err := that.client.MGet(ctx,
		resultKey(entity.StatusXWins),
		resultKey(entity.StatusOWins),
		resultKey(entity.StatusDraw),
	).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get results: %w", err)
	}

	counts := make([]int64, len(values))
	for i, value := range values {
		// missing keys come back as nil
		raw, ok := value.(string)
		if !ok {
			continue
		}

		counts[i], err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse result count: %w", err)
		}
	}

	return entity.Tally{XWins: counts[0], OWins: counts[1], Draws: counts[2]}, nil
}

func resultKey(status entity.Status) string {
	return resultKeyPrefix + status.String()
}
