// Package playback steps through a precomputed simulation result the way an
// animated view does: play, pause, reset, skip to end, with adjustable speed.
// It never recomputes hits or faults; it only moves a cursor over the result.
package playback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/inference-sim/pagesim/sim"
)

const (
	MinSpeed     = 0.5
	MaxSpeed     = 3.0
	SpeedStep    = 0.5
	DefaultSpeed = 1.0
)

// ErrInvalidSpeed is returned by SetSpeed for values outside [MinSpeed, MaxSpeed]
// or off the SpeedStep grid.
var ErrInvalidSpeed = errors.New("invalid playback speed")

// Player is a cursor over the snapshots of one SimulationResult.
// Step 0 is the initial empty snapshot; LastStep is len(Steps)-1.
// Safe for concurrent use: controls may be called while Run is ticking.
type Player struct {
	mu           sync.Mutex
	result       *sim.SimulationResult
	current      int
	playing      bool
	speed        float64
	baseInterval time.Duration
	speedChanged chan struct{}
}

// NewPlayer creates a paused Player at step 0 ticking once per second at speed 1.
func NewPlayer(result *sim.SimulationResult) *Player {
	return NewPlayerWithInterval(result, time.Second)
}

// NewPlayerWithInterval is NewPlayer with a custom tick interval at speed 1.
func NewPlayerWithInterval(result *sim.SimulationResult, base time.Duration) *Player {
	return &Player{
		result:       result,
		speed:        DefaultSpeed,
		baseInterval: base,
		speedChanged: make(chan struct{}, 1),
	}
}

// Step returns the cursor position.
func (p *Player) Step() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// LastStep returns the index of the final snapshot.
func (p *Player) LastStep() int {
	return len(p.result.Steps) - 1
}

// Current returns the snapshot under the cursor.
func (p *Player) Current() sim.StepSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result.Steps[p.current]
}

// Visible returns a copy of the snapshots revealed so far, excluding the initial one.
func (p *Player) Visible() []sim.StepSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.result.Steps[1 : p.current+1])
}

// Tally returns hits and faults up to the cursor.
func (p *Player) Tally() sim.Tally {
	return p.result.Prefix(p.Step())
}

// Playing reports whether the player is advancing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// AtEnd reports whether the cursor is on the last snapshot.
func (p *Player) AtEnd() bool {
	return p.Step() >= p.LastStep()
}

// Play starts advancing. A player sitting on the last step restarts from step 0.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current >= len(p.result.Steps)-1 {
		p.current = 0
	}
	p.playing = true
}

// Pause stops advancing and keeps the cursor.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Reset pauses and rewinds to step 0.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.current = 0
}

// SkipToEnd pauses on the last step.
func (p *Player) SkipToEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.current = len(p.result.Steps) - 1
}

// Next advances one step. It returns false, and stops playing, once the
// cursor is on the last step.
func (p *Player) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current >= len(p.result.Steps)-1 {
		p.playing = false
		return false
	}
	p.current++
	if p.current == len(p.result.Steps)-1 {
		p.playing = false
	}
	return true
}

// Speed returns the current speed multiplier.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// ValidateSpeed checks that speed is one of 0.5, 1, ..., 3.
func ValidateSpeed(speed float64) error {
	if speed < MinSpeed || speed > MaxSpeed || math.Mod(speed, SpeedStep) != 0 {
		return fmt.Errorf("%w: %v not in [%v, %v] in steps of %v", ErrInvalidSpeed, speed, MinSpeed, MaxSpeed, SpeedStep)
	}
	return nil
}

// SetSpeed changes the speed multiplier, resetting a running ticker.
func (p *Player) SetSpeed(speed float64) error {
	if err := ValidateSpeed(speed); err != nil {
		return err
	}
	p.mu.Lock()
	p.speed = speed
	p.mu.Unlock()
	select {
	case p.speedChanged <- struct{}{}:
	default:
	}
	return nil
}

// Interval returns the delay between steps at the current speed.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return time.Duration(float64(p.baseInterval) / p.speed)
}

// Run plays from the current position, calling emit with the current snapshot
// and then once per tick with each following snapshot. It returns nil when the
// last step is reached or the player is paused, and ctx.Err() on cancellation.
func (p *Player) Run(ctx context.Context, emit func(sim.StepSnapshot)) error {
	p.Play()
	emit(p.Current())
	if p.AtEnd() {
		p.Pause()
		return nil
	}

	ticker := time.NewTicker(p.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-p.speedChanged:
			ticker.Reset(p.Interval())
		case <-ticker.C:
			if !p.Playing() {
				return nil
			}
			if !p.Next() {
				return nil
			}
			emit(p.Current())
			if p.AtEnd() {
				return nil
			}
		}
	}
}
