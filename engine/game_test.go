package engine

import (
	"testing"
	"time"

	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/input"
	"github.com/K4zuy4/BattlePong-7/settings"
)

type testRig struct {
	bus   *events.Bus
	store *settings.Store
	rec   *events.Recorder
	ctx   *Context
	game  *Game
	now   time.Time
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	rig := &testRig{
		rec: &events.Recorder{},
		now: time.Unix(1000, 0),
	}
	rig.bus = events.NewBus(rig.rec)
	rig.store = settings.New(rig.bus, rig.rec)
	rig.ctx = NewContext(rig.bus, rig.store, rig.rec)
	rig.ctx.Seed(1)
	rig.ctx.SetClock(func() time.Time { return rig.now })
	rig.game = NewGame(rig.ctx)
	return rig
}

func (r *testRig) advance(d time.Duration) {
	r.now = r.now.Add(d)
}

func (r *testRig) step(in input.Snapshot) {
	r.game.Step(16*time.Millisecond, in)
}

func TestNewGameServesOneBall(t *testing.T) {
	rig := newTestRig(t)

	balls := rig.game.Balls()
	if len(balls) != 1 {
		t.Fatalf("expected 1 serve ball, got %d", len(balls))
	}

	disp := rig.store.Display()
	if balls[0].X != float64(disp.Width)/2 || balls[0].Y != float64(disp.Height)/2 {
		t.Errorf("serve ball not centered: (%v, %v)", balls[0].X, balls[0].Y)
	}
	if balls[0].Speed() == 0 {
		t.Errorf("serve ball has no velocity")
	}
}

func TestSpawnBallRequestedAddsExactCount(t *testing.T) {
	rig := newTestRig(t)
	rig.store.Patch(settings.SectionBall, map[string]any{"speed": 50.0})

	before := len(rig.game.Balls())
	rig.bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 3})

	balls := rig.game.Balls()
	if len(balls)-before != 3 {
		t.Fatalf("expected exactly 3 new balls, got %d", len(balls)-before)
	}

	// New balls use the live settings speed
	for _, b := range balls[before:] {
		speed := b.Speed()
		if speed < 49 || speed > 51*1.1 {
			t.Errorf("spawned ball speed %v not derived from current settings", speed)
		}
	}
}

func TestSpawnClampedAtMaxBalls(t *testing.T) {
	rig := newTestRig(t)
	rig.store.Patch(settings.SectionChaos, map[string]any{"max_balls": 4})

	rig.bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 10})

	if got := len(rig.game.Balls()); got != 4 {
		t.Errorf("expected ball count clamped to 4, got %d", got)
	}
	if len(rig.rec.Errors) == 0 {
		t.Errorf("clamped spawn must be reported, not silent")
	}
}

func TestBallExitScoresAndRemoves(t *testing.T) {
	rig := newTestRig(t)

	var scores []*events.ScoreChangedPayload
	rig.bus.Subscribe(events.TypeScoreChanged, func(e events.Event) {
		scores = append(scores, e.Payload.(*events.ScoreChangedPayload))
	})

	// Push the ball past the right boundary: the right side conceded,
	// left scores
	disp := rig.store.Display()
	ball := rig.game.Balls()[0]
	ball.X = float64(disp.Width) + 10
	rig.step(input.Snapshot{})

	if len(scores) != 1 {
		t.Fatalf("expected 1 score event, got %d", len(scores))
	}
	if scores[0].Side != events.SideLeft || scores[0].Value != 1 {
		t.Errorf("expected left +1, got %s=%d", scores[0].Side, scores[0].Value)
	}
	if got := rig.game.Score(); got[events.SideLeft] != 1 || got[events.SideRight] != 0 {
		t.Errorf("score state mismatch: %v", got)
	}

	for _, b := range rig.game.Balls() {
		if b.ID == ball.ID {
			t.Errorf("exited ball still in live set")
		}
	}
}

func TestScoreSubscriberSpawnsSurviveBallRemoval(t *testing.T) {
	rig := newTestRig(t)

	// A system reacting to a score by requesting balls must see its
	// spawns survive the removal of the exited ball
	rig.bus.Subscribe(events.TypeScoreChanged, func(events.Event) {
		rig.bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 3})
	})

	disp := rig.store.Display()
	exited := rig.game.Balls()[0]
	exited.X = float64(disp.Width) + 10
	rig.step(input.Snapshot{})

	balls := rig.game.Balls()
	if len(balls) != 3 {
		t.Fatalf("expected the 3 spawned balls to remain live, got %d", len(balls))
	}
	for _, b := range balls {
		if b.ID == exited.ID {
			t.Errorf("exited ball still in live set")
		}
	}
}

func TestRoundResetServedAfterLastBallExits(t *testing.T) {
	rig := newTestRig(t)

	roundResets := 0
	rig.bus.Subscribe(events.TypeRoundReset, func(events.Event) { roundResets++ })

	rig.game.Balls()[0].X = -10
	rig.step(input.Snapshot{})

	if roundResets != 1 {
		t.Fatalf("expected 1 round reset, got %d", roundResets)
	}
	if got := len(rig.game.Balls()); got != 1 {
		t.Errorf("expected fresh serve ball, got %d balls", got)
	}
}

func TestGameResetRestoresEverything(t *testing.T) {
	rig := newTestRig(t)

	rig.store.Patch(settings.SectionBall, map[string]any{"speed": 77.0})
	rig.bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 5})
	rig.game.Balls()[0].X = -10
	rig.step(input.Snapshot{})
	rig.ctx.Scheduler.After(time.Second, events.TypeRoundReset, nil)

	rig.bus.Emit(events.TypeGameReset, nil)

	if got := rig.store.Ball().Speed; got != 30 {
		t.Errorf("settings not restored to defaults: speed=%v", got)
	}
	if got := rig.game.Score(); got != [2]int{} {
		t.Errorf("scores not zeroed: %v", got)
	}
	if got := len(rig.game.Balls()); got != 1 {
		t.Errorf("expected a single default serve ball, got %d", got)
	}
	if rig.ctx.Scheduler.Pending() != 0 {
		t.Errorf("scheduled effects must be dropped on reset")
	}
	disp := rig.store.Display()
	b := rig.game.Balls()[0]
	if b.X != float64(disp.Width)/2 || b.Y != float64(disp.Height)/2 {
		t.Errorf("serve ball not at default spawn position")
	}
}

func TestMatchOverStopsPhysicsUntilRestart(t *testing.T) {
	rig := newTestRig(t)
	rig.store.Patch(settings.SectionMatch, map[string]any{"win_score": 1})

	matchOvers := 0
	rig.bus.Subscribe(events.TypeMatchOver, func(events.Event) { matchOvers++ })

	rig.game.Balls()[0].X = -10
	rig.step(input.Snapshot{})

	if rig.game.State() != StateGameOver {
		t.Fatalf("expected game over, got state %v", rig.game.State())
	}
	if matchOvers != 1 {
		t.Errorf("expected 1 match-over event, got %d", matchOvers)
	}
	if rig.game.Winner() != events.SideRight {
		t.Errorf("expected right winner, got %s", rig.game.Winner())
	}

	// Physics frozen: spawn input is ignored while awaiting restart
	before := len(rig.game.Balls())
	rig.step(input.Snapshot{SpawnBall: true})
	if len(rig.game.Balls()) != before {
		t.Errorf("physics must stop after match over")
	}

	rig.step(input.Snapshot{Restart: true})
	if rig.game.State() != StatePlaying {
		t.Errorf("restart input should reset the game")
	}
	if got := rig.game.Score(); got != [2]int{} {
		t.Errorf("restart should zero scores, got %v", got)
	}
	if got := rig.store.Match().WinScore; got != 10 {
		t.Errorf("restart should restore default win score, got %d", got)
	}
}

func TestSettingsApplierSingleWriter(t *testing.T) {
	rig := newTestRig(t)

	rig.bus.Emit(events.TypeSettingsChangeRequested, &events.SettingsChangeRequestedPayload{
		Section: settings.SectionPaddle,
		Values:  map[string]any{"speed": 64.0},
	})

	if got := rig.store.Paddle().Speed; got != 64 {
		t.Errorf("settings change request not applied, speed=%v", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	rig := newTestRig(t)

	b := rig.game.Balls()[0]
	x := b.X

	rig.game.SetPaused(true)
	rig.step(input.Snapshot{})
	if b.X != x {
		t.Errorf("paused game advanced physics")
	}

	rig.game.SetPaused(false)
	rig.step(input.Snapshot{})
	if b.X == x {
		t.Errorf("unpaused game did not advance")
	}
}

func TestLiveSettingsPatchAffectsPaddleSpeed(t *testing.T) {
	rig := newTestRig(t)

	p := rig.game.Paddle(events.SideLeft)
	start := p.Y
	rig.step(input.Snapshot{LeftUp: true})
	slowMove := start - p.Y

	rig.store.Patch(settings.SectionPaddle, map[string]any{"speed": 420.0})
	start = p.Y
	rig.step(input.Snapshot{LeftUp: true})
	fastMove := start - p.Y

	if fastMove <= slowMove {
		t.Errorf("live paddle speed patch had no effect: slow=%v fast=%v", slowMove, fastMove)
	}
}
