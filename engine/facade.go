// Package engine implements the thin orchestrator exposed to a UI: it
// wires the turn manager, rule validator, scoring, and AI strategies
// together, and emits a structured event stream (spec.md §4.8).
//
// The facade is a single-goroutine actor, grounded on the teacher's
// Hub.run() select loop (backend/hub.go): every public method that reads
// or changes game state sends a command over a channel to the run loop, which is the only goroutine
// that ever touches game.State directly, satisfying spec.md §5's
// single-threaded-cooperative-actor requirement without requiring the
// caller to do its own locking.
package engine

import (
	"fmt"
	"iter"
	"time"

	"github.com/korjavin/blokus-engine/ai"
	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/rules"
	"github.com/korjavin/blokus-engine/scoring"
)

// SeatConfig describes one seat for NewGame.
type SeatConfig struct {
	Name     string
	Color    string
	IsAI     bool
	Strategy string // "easy", "medium", "hard"; ignored if !IsAI
}

// Config configures a new game.
type Config struct {
	Seats []SeatConfig
	Seed  int64
}

type result struct {
	snapshot  Snapshot
	clone     *game.State
	breakdown scoring.Breakdown
	verr      *rules.ValidationError
	err       error
	move      rules.Move
}

type command struct {
	kind  string // "start", "apply", "pass", "requestAI", "snapshot", "preview", "clone", "breakdown"
	reply chan result

	playerID    int
	pieceID     catalog.PieceID
	orientation catalog.Orientation
	anchor      board.Point
	deadline    time.Time
}

// Facade is the engine's single entry point for a UI or host program.
type Facade struct {
	cmdCh chan command
	done  chan struct{}

	state      *game.State
	strategies map[int]ai.Strategy
	events     *eventLog
}

// NewGame constructs a game in the setup phase and starts the facade's
// actor goroutine.
func NewGame(cfg Config) (*Facade, error) {
	names := make([]string, len(cfg.Seats))
	colors := make([]string, len(cfg.Seats))
	isAI := make([]bool, len(cfg.Seats))
	strategyNames := make([]string, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		names[i] = seat.Name
		colors[i] = seat.Color
		isAI[i] = seat.IsAI
		strategyNames[i] = seat.Strategy
	}

	state, err := game.New(names, colors, isAI, strategyNames)
	if err != nil {
		return nil, err
	}

	f := &Facade{
		cmdCh:      make(chan command),
		done:       make(chan struct{}),
		state:      state,
		strategies: make(map[int]ai.Strategy),
		events:     newEventLog(),
	}
	for i, seat := range cfg.Seats {
		if !seat.IsAI {
			continue
		}
		f.strategies[i+1] = buildStrategy(seat.Strategy, cfg.Seed+int64(i))
	}

	go f.run()
	return f, nil
}

func buildStrategy(name string, seed int64) ai.Strategy {
	switch name {
	case "medium":
		return ai.NewMediumStrategy(ai.DefaultMediumWeights())
	case "hard":
		return ai.NewHardStrategy(ai.DefaultHardWeights())
	default:
		return ai.NewEasyStrategy(seed)
	}
}

// run is the facade's only goroutine that ever mutates f.state.
func (f *Facade) run() {
	for {
		select {
		case cmd := <-f.cmdCh:
			f.handle(cmd)
		case <-f.done:
			return
		}
	}
}

func (f *Facade) handle(cmd command) {
	switch cmd.kind {
	case "start":
		err := f.state.Start()
		cmd.reply <- result{snapshot: buildSnapshot(f.state), err: err}

	case "apply":
		f.applyAndReply(cmd.playerID, cmd.pieceID, cmd.orientation, cmd.anchor, cmd.reply)

	case "pass":
		err := f.state.ApplyPass(cmd.playerID)
		if err == nil {
			f.events.emit(Event{Kind: PlayerPassed, PlayerID: cmd.playerID})
			f.events.emit(Event{Kind: TurnAdvanced, PlayerID: f.state.CurrentPlayer().ID})
			f.maybeEmitGameEnded()
		}
		cmd.reply <- result{snapshot: buildSnapshot(f.state), err: err}

	case "requestAI":
		f.handleRequestAI(cmd)

	case "snapshot":
		cmd.reply <- result{snapshot: buildSnapshot(f.state)}

	case "clone":
		cmd.reply <- result{clone: f.state.Clone()}

	case "breakdown":
		p := f.state.PlayerByID(cmd.playerID)
		if p == nil {
			cmd.reply <- result{err: &game.IllegalOperation{Reason: fmt.Sprintf("no such player %d", cmd.playerID)}}
			return
		}
		cmd.reply <- result{breakdown: scoring.Compute(p)}

	case "preview":
		p := f.state.PlayerByID(cmd.playerID)
		verr := rules.Validate(f.state.Board, p, cmd.pieceID, cmd.orientation, cmd.anchor)
		cmd.reply <- result{verr: verr}

	default:
		cmd.reply <- result{err: fmt.Errorf("engine: unknown command %q", cmd.kind)}
	}
}

// applyAndReply runs validate+apply for playerID and emits the
// corresponding events, used by both direct UI moves and applied AI
// moves.
func (f *Facade) applyAndReply(playerID int, pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point, reply chan result) {
	verr, err := f.state.ApplyMove(playerID, pieceID, orientation, anchor)
	f.events.emit(Event{Kind: PlacementAttempted, PlayerID: playerID, PieceID: string(pieceID), Ok: verr == nil && err == nil, ErrorCode: codeOf(verr), ErrorMsg: msgOf(verr)})
	if verr == nil && err == nil {
		f.events.emit(Event{Kind: PlacementApplied, PlayerID: playerID, PieceID: string(pieceID), Ok: true})
		f.events.emit(Event{Kind: TurnAdvanced, PlayerID: f.state.CurrentPlayer().ID})
		f.maybeEmitGameEnded()
	}
	if reply != nil {
		reply <- result{snapshot: buildSnapshot(f.state), verr: verr, err: err}
	}
}

// handleRequestAI dispatches the active player's Strategy.Choose on a
// worker goroutine and serializes the result back through a single-slot
// channel before applying it, per spec.md §5. The run loop (this
// goroutine) waits on that channel, so no other command is handled
// until the strategy returns.
func (f *Facade) handleRequestAI(cmd command) {
	playerID := f.state.CurrentPlayer().ID
	strat, ok := f.strategies[playerID]
	if !ok {
		cmd.reply <- result{err: &game.IllegalOperation{Reason: fmt.Sprintf("player %d has no AI strategy configured", playerID)}}
		return
	}

	f.events.emit(Event{Kind: AIThinkingStarted, PlayerID: playerID})

	aiResultCh := make(chan rules.Move, 1) // single-slot queue, spec.md §5
	snapshot := f.state.Clone()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				// A panicking strategy is caught here and translated to
				// a pass, never propagated to the engine (spec.md §7).
				aiResultCh <- rules.PassMove(playerID)
			}
		}()
		aiResultCh <- strat.Choose(snapshot, playerID, cmd.deadline)
	}()

	move := <-aiResultCh
	f.events.emit(Event{Kind: AIThinkingEnded, PlayerID: playerID})

	if move.Pass {
		err := f.state.ApplyPass(playerID)
		if err == nil {
			f.events.emit(Event{Kind: PlayerPassed, PlayerID: playerID})
			f.events.emit(Event{Kind: TurnAdvanced, PlayerID: f.state.CurrentPlayer().ID})
			f.maybeEmitGameEnded()
		}
		cmd.reply <- result{snapshot: buildSnapshot(f.state), err: err, move: move}
		return
	}

	verr, err := f.state.ApplyMove(playerID, move.PieceID, move.Orientation, move.Anchor)
	f.events.emit(Event{Kind: PlacementAttempted, PlayerID: playerID, PieceID: string(move.PieceID), Ok: verr == nil && err == nil, ErrorCode: codeOf(verr), ErrorMsg: msgOf(verr)})
	if verr == nil && err == nil {
		f.events.emit(Event{Kind: PlacementApplied, PlayerID: playerID, PieceID: string(move.PieceID), Ok: true})
		f.events.emit(Event{Kind: TurnAdvanced, PlayerID: f.state.CurrentPlayer().ID})
		f.maybeEmitGameEnded()
	}
	cmd.reply <- result{snapshot: buildSnapshot(f.state), verr: verr, err: err, move: move}
}

func (f *Facade) maybeEmitGameEnded() {
	if f.state.Phase != game.Ended {
		return
	}
	f.events.emit(Event{Kind: GameEndedEvent, WinnerIDs: f.state.WinnerIDs})
}

func codeOf(verr *rules.ValidationError) string {
	if verr == nil {
		return ""
	}
	return string(verr.Code)
}

func msgOf(verr *rules.ValidationError) string {
	if verr == nil {
		return ""
	}
	return verr.Message
}

// send dispatches cmd and waits for its reply.
func (f *Facade) send(cmd command) result {
	cmd.reply = make(chan result, 1)
	f.cmdCh <- cmd
	return <-cmd.reply
}

// Start transitions the game from setup to playing.
func (f *Facade) Start() (Snapshot, error) {
	r := f.send(command{kind: "start"})
	return r.snapshot, r.err
}

// CurrentPlayer returns a read-only view of whichever player's turn it
// is.
func (f *Facade) CurrentPlayer() PlayerView {
	snap := f.Snapshot()
	for _, p := range snap.Players {
		if p.ID == snap.CurrentPlayer {
			return p
		}
	}
	return PlayerView{}
}

// LegalMoves returns an iterator over playerID's currently legal moves.
// Nothing is computed until the iterator is ranged over; the first pull
// then builds the complete legal-move list, and stopping early only
// skips the remaining yields. Enumeration runs against a frozen clone
// taken off the actor loop so a large legal-move set never blocks
// concurrent facade calls.
func (f *Facade) LegalMoves(playerID int) iter.Seq[rules.Move] {
	return func(yield func(rules.Move) bool) {
		r := f.send(command{kind: "clone"})
		p := r.clone.PlayerByID(playerID)
		if p == nil {
			return
		}
		for _, m := range rules.EnumerateLegalMoves(r.clone.Board, p, nil) {
			if !yield(m) {
				return
			}
		}
	}
}

// Preview reports whether placing pieceID at orientation/anchor would be
// legal for playerID, without mutating state.
func (f *Facade) Preview(playerID int, pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point) *rules.ValidationError {
	r := f.send(command{kind: "preview", playerID: playerID, pieceID: pieceID, orientation: orientation, anchor: anchor})
	return r.verr
}

// Apply validates and applies a placement for playerID.
func (f *Facade) Apply(playerID int, pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point) (Snapshot, *rules.ValidationError, error) {
	r := f.send(command{kind: "apply", playerID: playerID, pieceID: pieceID, orientation: orientation, anchor: anchor})
	return r.snapshot, r.verr, r.err
}

// PassTurn records a pass for playerID.
func (f *Facade) PassTurn(playerID int) (Snapshot, error) {
	r := f.send(command{kind: "pass", playerID: playerID})
	return r.snapshot, r.err
}

// RequestAIMove invokes the current player's strategy and applies
// whatever move it returns (or a pass).
func (f *Facade) RequestAIMove(deadline time.Time) (rules.Move, Snapshot, error) {
	r := f.send(command{kind: "requestAI", deadline: deadline})
	return r.move, r.snapshot, r.err
}

// Snapshot returns the current read-only state view.
func (f *Facade) Snapshot() Snapshot {
	r := f.send(command{kind: "snapshot"})
	return r.snapshot
}

// ScoreBreakdown returns playerID's score breakdown.
func (f *Facade) ScoreBreakdown(playerID int) (scoring.Breakdown, error) {
	r := f.send(command{kind: "breakdown", playerID: playerID})
	return r.breakdown, r.err
}

// Events returns a copy of the event stream emitted so far.
func (f *Facade) Events() []Event {
	return f.events.Events()
}

// Close stops the facade's actor goroutine.
func (f *Facade) Close() {
	close(f.done)
}
