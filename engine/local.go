package engine

import (
	"fmt"
	"time"

	"senet/experiments/metrics"
	"senet/game"
	"senet/meta"
	"senet/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(e *Local)

// Local runs a game between two in-process agents.
type Local struct {
	position        game.Position
	agents          map[game.Side]agent.Agent
	rules           game.Rules
	throw           func() float64
	maxTurns        int
	repetitionLimit int
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithRepetitionLimit(limit int) Option {
	return func(e *Local) {
		if limit > 1 {
			e.repetitionLimit = limit
		}
	}
}

// WithSeed makes the stick throws reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Local) {
		rnd := rand.New(rand.NewSource(seed))
		e.throw = rnd.Float64
	}
}

func WithPosition(p game.Position) Option {
	return func(e *Local) {
		e.position = p
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Local) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func NewLocal(agentA, agentB agent.Agent, options ...Option) *Local {
	if agentA == nil || agentB == nil {
		panic("need an agent for each side")
	}
	e := &Local{ // Default values
		position:        game.StartingPosition(),
		agents:          map[game.Side]agent.Agent{game.SideA: agentA, game.SideB: agentB},
		rules:           game.NewStandardRules(),
		throw:           frand.Float64,
		maxTurns:        meta.MAX_TURNS,
		repetitionLimit: meta.REPETITION_LIMIT,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) Position() game.Position {
	return e.position
}

func (e *Local) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.position.ToMove().String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}
	seen := map[game.Position]int{e.position: 1}

	log.Info().Msgf("player %s is starting", e.position.ToMove())

	for turn := 1; turn <= e.maxTurns && !e.position.IsTerminal(); turn++ {
		side := e.position.ToMove()
		roll := game.ThrowSticks(e.throw())

		move, ok, searchMetric := e.agents[side].FindMove(e.position, roll)
		moveMetric := metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Roll:         int(roll),
			Move:         "pass",
			SearchMetric: searchMetric,
		}
		if ok {
			e.checkLegal(move, roll)
			e.position = e.rules.Apply(e.position, move)
			moveMetric.Move = move.String()
		} else {
			e.position = e.position.Pass()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().
			Int("turn", turn).
			Str("player", side.String()).
			Int("roll", int(roll)).
			Str("move", moveMetric.Move).
			Str("position", e.position.String()).
			Msg("played")

		seen[e.position]++
		if seen[e.position] >= e.repetitionLimit {
			gameMetric.Reason = ReasonRepetition
			break
		}
	}

	winner, won := e.position.Winner()
	switch {
	case won:
		gameMetric.Winner = winner.String()
		gameMetric.Reason = ReasonWin
	case gameMetric.Reason == "":
		gameMetric.Reason = ReasonTurnLimit
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if won {
		log.Info().Msgf("player %s won after %d moves", winner, gameMetric.TotalMoves)
		return winner, gameMetric, moveMetrics
	}
	log.Info().Msgf("draw by %s after %d moves", gameMetric.Reason, gameMetric.TotalMoves)
	return game.Empty, gameMetric, moveMetrics
}

func (e *Local) checkLegal(move game.Move, roll game.Roll) {
	for _, legal := range e.rules.LegalMoves(e.position, roll) {
		if legal == move {
			return
		}
	}
	panic(fmt.Sprintf("agent played illegal move %s with roll %d in %s", move, roll, e.position))
}
