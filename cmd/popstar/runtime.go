package main

import (
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/vovakirdan/popstar/internal/audio"
	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/storage"
)

// tickRate returns --fps, or the configured rate when the flag is unset.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return appConfig.Timing.TickRate
}

// terminalConfig builds the runtime config for the local terminal.
func terminalConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = tickRate()
	rc.Seed = flagSeed
	return rc
}

// openStore opens the scores database, or returns nil so play continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// logToFile moves logging off the terminal while a full-screen UI runs.
// It returns a function that closes the file.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".popstar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "popstar.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// newSound opens the speaker for explosion sounds. It returns nil when audio
// is muted or disabled, and a silent manager when no device is available.
func newSound() *audio.SoundManager {
	a := appConfig.Audio
	if flagMute || !a.Enabled {
		return nil
	}

	timing := appConfig.Timing
	timing.TickRate = tickRate()

	sm := audio.NewSoundManager(audio.Config{
		Enabled:      true,
		Volume:       a.Volume,
		SampleRate:   a.SampleRate,
		SpacingTicks: timing.TicksFor(a.ExplosionSpacingMS),
	})
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return sm
}
