// Package logging builds the zap loggers of the bracket tool and
// reports bracket events through them.
package logging

import (
	"fmt"

	"github.com/ezBadminton/gobracket/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Builds a production logger with the given level
func New(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Events writes the bracket events to a logger
type Events struct {
	logger *zap.Logger
}

var _ core.EventSink = (*Events)(nil)

func NewEvents(logger *zap.Logger, tournamentID string) *Events {
	return &Events{logger: logger.With(zap.String("tournament", tournamentID))}
}

func (e *Events) MatchCompleted(match core.Match) {
	e.logger.Info("Match completed",
		zap.String("match", match.ID),
		zap.String("segment", string(match.Segment)),
		zap.String("winner", match.Winner),
		zap.String("loser", match.Loser),
		zap.Int("score1", match.Score1),
		zap.Int("score2", match.Score2),
	)
}

func (e *Events) CompetitorEliminated(team core.Team) {
	e.logger.Info("Team eliminated",
		zap.String("team", team.ID),
		zap.String("name", team.Name),
		zap.Int("seed", team.Seed),
	)
}

func (e *Events) TournamentResolved(champion core.Team) {
	e.logger.Info("Tournament resolved",
		zap.String("champion", champion.ID),
		zap.String("name", champion.Name),
	)
}
