package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config controls explosion playback.
type Config struct {
	Enabled      bool
	Volume       float64 // 0.0 .. 1.0
	SampleRate   int
	SpacingTicks int // Ticks between queued explosions
}

// SoundManager queues explosions from the game loop and plays them through
// the speaker. When the speaker is unavailable it keeps pacing the queue and
// stays silent.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	queue       *ExplosionQueue
	mixer       *beep.Mixer
	initialized bool
	played      int
	seed        int64
}

// NewSoundManager creates a sound manager. Call Initialize to open the speaker.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		queue: NewExplosionQueue(cfg.SpacingTicks),
		mixer: &beep.Mixer{},
		seed:  time.Now().UnixNano(),
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled or
// already initialized.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Trigger queues n explosions, one per removed star.
func (sm *SoundManager) Trigger(n int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.queue.Add(n)
}

// Tick releases at most one queued explosion. Call once per simulation tick.
func (sm *SoundManager) Tick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.queue.Tick() {
		return
	}
	sm.played++
	if !sm.initialized {
		return
	}

	sm.seed++
	s := withVolume(newExplosion(sm.rate, sm.seed), sm.cfg.Volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Flush drops queued explosions, used when a new board is dealt.
func (sm *SoundManager) Flush() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.queue.Reset()
}

// Played returns how many explosions have been released so far.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.played
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.queue.Reset()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
