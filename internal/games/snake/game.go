// Package snake implements the grid Snake engine: a square board, a snake,
// one food cell, a pending and an applied direction, a score and a game-over
// flag. It is driven by an external fixed-period tick and renders nothing.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// DefaultFoodPoints is the score awarded per food.
const DefaultFoodPoints = 10

// CollisionPolicy decides whether the tail counts as an obstacle on the tick
// it is vacated.
type CollisionPolicy int

const (
	// CollisionStrict checks the head against the whole pre-move body,
	// including the tail cell that is about to move away.
	CollisionStrict CollisionPolicy = iota
	// CollisionTailExclusive lets the head enter the cell the tail leaves
	// on the same tick.
	CollisionTailExclusive
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionStrict:
		return "strict"
	case CollisionTailExclusive:
		return "tail_exclusive"
	default:
		return "unknown"
	}
}

// ParseCollisionPolicy converts a config value to a CollisionPolicy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "strict":
		return CollisionStrict, nil
	case "tail_exclusive":
		return CollisionTailExclusive, nil
	}
	return 0, fmt.Errorf("snake: unknown collision policy %q", s)
}

// Option configures a Game.
type Option func(*Game)

// WithBoardSize sets the board edge length.
func WithBoardSize(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.boardSize = n
		}
	}
}

// WithSeed seeds the food placement RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses the given RNG for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSpeed sets the tick period reported to controllers.
func WithSpeed(d time.Duration) Option {
	return func(g *Game) {
		if d > 0 {
			g.speed = d
		}
	}
}

// WithFoodPoints sets the score awarded per food.
func WithFoodPoints(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.foodPoints = n
		}
	}
}

// WithCollisionPolicy selects the self-collision rule.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithVariant sets the id and title reported to the platform.
func WithVariant(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// Game is the snake engine. It is not safe for concurrent use; the owning
// controller serializes access.
type Game struct {
	id         string
	title      string
	boardSize  int
	bounds     core.Rect
	rng        *rand.Rand
	speed      time.Duration
	foodPoints int
	policy     CollisionPolicy

	// Snake state, head at index 0
	snake     []core.Cell
	food      core.Cell
	direction core.Direction // Applied on the last tick
	pending   core.Direction // Applied on the next tick

	score    int
	gameOver bool
	cause    core.DeathCause
	ticks    uint64
}

// New creates a fresh game.
func New(opts ...Option) *Game {
	g := &Game{
		id:         "classic",
		title:      "Snake",
		boardSize:  core.DefaultBoardSize,
		speed:      core.DefaultTickInterval,
		foodPoints: DefaultFoodPoints,
		policy:     CollisionStrict,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.bounds = core.NewRect(0, 0, g.boardSize, g.boardSize)

	g.reset()
	g.food = g.InitialFood()
	if g.isSnakeAt(g.food) {
		g.food = g.spawnFood()
	}
	return g
}

// NewFromConfig creates a game from a runtime config and a collision policy.
func NewFromConfig(cfg core.RuntimeConfig, policy CollisionPolicy, id, title string) *Game {
	opts := []Option{
		WithBoardSize(cfg.BoardSize),
		WithSpeed(cfg.TickInterval),
		WithFoodPoints(cfg.FoodPoints),
		WithCollisionPolicy(policy),
		WithVariant(id, title),
	}
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	return New(opts...)
}

func init() {
	registry.Register("classic", "Snake", func(cfg core.RuntimeConfig) registry.Game {
		return NewFromConfig(cfg, CollisionStrict, "classic", "Snake")
	})
	registry.Register("relaxed", "Snake (Relaxed Tail)", func(cfg core.RuntimeConfig) registry.Game {
		return NewFromConfig(cfg, CollisionTailExclusive, "relaxed", "Snake (Relaxed Tail)")
	})
}

// Origin returns the spawn cell of the one-cell snake.
func (g *Game) Origin() core.Cell {
	return core.Cell{X: g.boardSize / 2, Y: g.boardSize / 2}
}

// InitialFood returns the food cell of a freshly constructed game.
func (g *Game) InitialFood() core.Cell {
	return core.Cell{X: g.boardSize * 3 / 4, Y: g.boardSize * 3 / 4}
}

// reset restores everything except the food.
func (g *Game) reset() {
	g.snake = []core.Cell{g.Origin()}
	g.direction = core.DirUp
	g.pending = core.DirUp
	g.score = 0
	g.gameOver = false
	g.cause = core.CauseNone
	g.ticks = 0
}

// Restart resets the game to its initial values with a random food cell.
func (g *Game) Restart() {
	g.reset()
	g.food = g.spawnFood()
}

// SetPendingDirection stores d for the next tick. A request for the exact
// inverse of the applied direction is dropped. Later calls overwrite earlier
// ones; nothing is queued.
func (g *Game) SetPendingDirection(d core.Direction) {
	if !d.Valid() || d == g.direction.Opposite() {
		return
	}
	g.pending = d
}

// Tick advances the snake by one cell. It does nothing once the game is over.
func (g *Game) Tick() core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	g.direction = g.pending
	head := g.snake[0]
	newHead := head.Add(g.direction.Vector())

	if !g.bounds.ContainsCell(newHead) {
		return g.die(core.CauseWall)
	}

	ate := newHead == g.food
	if g.hitsBody(newHead, ate) {
		return g.die(core.CauseSelf)
	}

	g.snake = append([]core.Cell{newHead}, g.snake...)

	if ate {
		g.score += g.foodPoints
		g.food = g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return core.StepResult{Moved: true, Ate: ate, State: g.State()}
}

func (g *Game) die(cause core.DeathCause) core.StepResult {
	g.gameOver = true
	g.cause = cause
	return core.StepResult{Died: true, Cause: cause, State: g.State()}
}

// hitsBody checks newHead against the pre-move body under the active policy.
func (g *Game) hitsBody(newHead core.Cell, growing bool) bool {
	body := g.snake
	if g.policy == CollisionTailExclusive && !growing {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == newHead {
			return true
		}
	}
	return false
}

// spawnFood picks uniformly random cells until one is off the snake.
// A snake covering the whole board never terminates; play does not reach it.
func (g *Game) spawnFood() core.Cell {
	for {
		c := core.Cell{X: g.rng.Intn(g.boardSize), Y: g.rng.Intn(g.boardSize)}
		if !g.isSnakeAt(c) {
			return c
		}
	}
}

func (g *Game) isSnakeAt(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Occupied reports whether the snake covers c.
func (g *Game) Occupied(c core.Cell) bool {
	return g.isSnakeAt(c)
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []core.Cell {
	out := make([]core.Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head cell.
func (g *Game) Head() core.Cell { return g.snake[0] }

// Food returns the food cell.
func (g *Game) Food() core.Cell { return g.food }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Cause returns what ended the game, empty while running.
func (g *Game) Cause() core.DeathCause { return g.cause }

// BoardSize returns the board edge length.
func (g *Game) BoardSize() int { return g.boardSize }

// Direction returns the applied direction.
func (g *Game) Direction() core.Direction { return g.direction }

// Pending returns the direction queued for the next tick.
func (g *Game) Pending() core.Direction { return g.pending }

// Speed returns the tick period the game was configured with.
func (g *Game) Speed() time.Duration { return g.speed }

// Policy returns the self-collision rule.
func (g *Game) Policy() CollisionPolicy { return g.policy }

// State returns the summary used by controllers.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   len(g.snake),
		GameOver: g.gameOver,
	}
}

// Snapshot returns a copy of the full state for renderers and APIs.
func (g *Game) Snapshot() core.Snapshot {
	phase := core.PhaseRunning
	if g.gameOver {
		phase = core.PhaseGameOver
	}
	return core.Snapshot{
		Variant:   g.id,
		BoardSize: g.boardSize,
		Snake:     g.Snake(),
		Food:      g.food,
		Direction: g.direction,
		Pending:   g.pending,
		Score:     g.score,
		Length:    len(g.snake),
		Phase:     phase,
		Cause:     g.cause,
		Ticks:     g.ticks,
		SpeedMs:   g.speed.Milliseconds(),
	}
}
