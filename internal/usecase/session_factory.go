package usecase

import "log/slog"

// SessionFactory - builds independent sessions that share only the result tally.
type SessionFactory struct {
	logger  *slog.Logger
	results resultRepo
}

func NewSessionFactory(logger *slog.Logger, results resultRepo) *SessionFactory {
	return &SessionFactory{
		logger:  logger,
		results: results,
	}
}

func (that *SessionFactory) NewSession(send SendFunc, attrs ...any) *UserHandler {
	return NewUserHandler(that.logger.With(attrs...), send, that.results)
}
