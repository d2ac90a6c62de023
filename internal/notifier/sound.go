package notifier

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Player is the audio boundary: a single pre-loaded sound asset that can be
// triggered and reset to its start position.
type Player interface {
	Play(ctx context.Context) error
	Reset()
}

// ExecPlayer shells out to a configured player command with the asset path.
// Playback is fire-and-forget; failures are logged, never blocking.
type ExecPlayer struct {
	logger  *zap.SugaredLogger
	command string
	asset   string
}

func NewExecPlayer(logger *zap.SugaredLogger, command, asset string) *ExecPlayer {
	return &ExecPlayer{
		logger:  logger,
		command: command,
		asset:   asset,
	}
}

func (p *ExecPlayer) Play(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.command, p.asset)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			p.logger.Debugw("sound playback finished with error", "err", err)
		}
	}()

	return nil
}

func (p *ExecPlayer) Reset() {}

// NoopPlayer is used when no player command is configured.
type NoopPlayer struct{}

func (NoopPlayer) Play(context.Context) error { return nil }
func (NoopPlayer) Reset()                     {}

// Repeater owns the repeating playback started on a match: one immediate
// play, then one per second, until released. Acquire and release are
// idempotent; release also happens on process shutdown so a dangling timer
// can never outlive a dismissed alert.
type Repeater struct {
	logger *zap.SugaredLogger
	player Player

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
}

func NewRepeater(logger *zap.SugaredLogger, player Player, enabled bool) *Repeater {
	return &Repeater{
		logger:  logger,
		player:  player,
		enabled: enabled,
	}
}

// Start begins repeating playback. No-op when sound is disabled or playback
// is already running.
func (r *Repeater) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled || r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.loop(ctx)
}

func (r *Repeater) loop(ctx context.Context) {
	r.play(ctx)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.play(ctx)
		}
	}
}

func (r *Repeater) play(ctx context.Context) {
	if err := r.player.Play(ctx); err != nil {
		r.logger.Debugw("failed to play notification sound", "err", err)
	}
}

// Stop cancels repeating playback and resets the asset to its start
// position. Safe to call when nothing is playing.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	r.player.Reset()
}

func (r *Repeater) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// SetEnabled toggles all playback; disabling while an alert is sounding
// also stops the running loop.
func (r *Repeater) SetEnabled(enabled bool) {
	r.mu.Lock()
	r.enabled = enabled
	cancel := r.cancel
	if !enabled {
		r.cancel = nil
	}
	r.mu.Unlock()

	if !enabled && cancel != nil {
		cancel()
		r.player.Reset()
	}
}
