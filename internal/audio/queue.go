// Package audio plays the explosion sounds of removed stars.
//
// Removals arrive in bursts (a whole group in one tick), but explosions are
// played one at a time with a fixed spacing, so a large group becomes a
// crackle rather than a single loud bang. The pacing is tick based and lives
// in ExplosionQueue; SoundManager renders the sound through beep.
package audio

// ExplosionQueue paces queued explosions to at most one per spacing window.
// It is driven by the simulation tick and is not safe for concurrent use.
type ExplosionQueue struct {
	spacing  int
	pending  int
	cooldown int
}

// NewExplosionQueue creates a queue releasing one explosion every
// spacingTicks ticks. A spacing below one releases one per tick.
func NewExplosionQueue(spacingTicks int) *ExplosionQueue {
	if spacingTicks < 1 {
		spacingTicks = 1
	}
	return &ExplosionQueue{spacing: spacingTicks}
}

// Add queues n explosions.
func (q *ExplosionQueue) Add(n int) {
	if n > 0 {
		q.pending += n
	}
}

// Tick advances one tick and reports whether an explosion plays now.
func (q *ExplosionQueue) Tick() bool {
	if q.cooldown > 0 {
		q.cooldown--
	}
	if q.pending == 0 || q.cooldown > 0 {
		return false
	}
	q.pending--
	q.cooldown = q.spacing
	return true
}

// Pending returns the number of explosions still waiting.
func (q *ExplosionQueue) Pending() int {
	return q.pending
}

// Reset drops all waiting explosions.
func (q *ExplosionQueue) Reset() {
	q.pending = 0
	q.cooldown = 0
}
