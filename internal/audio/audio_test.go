package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestExplosionQueuePacing(t *testing.T) {
	q := NewExplosionQueue(3)
	q.Add(3)

	var played []int
	for tick := 1; tick <= 12; tick++ {
		if q.Tick() {
			played = append(played, tick)
		}
	}

	want := []int{1, 4, 7}
	if len(played) != len(want) {
		t.Fatalf("played at %v, expected %v", played, want)
	}
	for i := range want {
		if played[i] != want[i] {
			t.Errorf("played at %v, expected %v", played, want)
			break
		}
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", q.Pending())
	}
}

func TestExplosionQueueBurstsAccumulate(t *testing.T) {
	q := NewExplosionQueue(0)
	q.Add(2)
	q.Add(0)
	q.Add(-4)
	q.Add(1)

	if q.Pending() != 3 {
		t.Fatalf("Pending() = %d, expected 3", q.Pending())
	}

	count := 0
	for i := 0; i < 5; i++ {
		if q.Tick() {
			count++
		}
	}
	if count != 3 {
		t.Errorf("released %d in 5 ticks with spacing 1, expected 3", count)
	}
}

func TestExplosionQueueReset(t *testing.T) {
	q := NewExplosionQueue(10)
	q.Add(5)
	q.Tick()
	q.Reset()

	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Reset", q.Pending())
	}
	q.Add(1)
	if !q.Tick() {
		t.Error("Reset should clear the cooldown")
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false, Volume: 0.5, SampleRate: 44100, SpacingTicks: 2})
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() with audio disabled = %v", err)
	}

	sm.Trigger(2)
	for i := 0; i < 4; i++ {
		sm.Tick()
	}
	if sm.Played() != 2 {
		t.Errorf("Played() = %d, expected 2", sm.Played())
	}

	sm.Trigger(5)
	sm.Flush()
	sm.Tick()
	if sm.Played() != 2 {
		t.Errorf("Flush should drop queued explosions, Played() = %d", sm.Played())
	}
	sm.Cleanup()
}

func TestExplosionStream(t *testing.T) {
	rate := beep.SampleRate(44100)
	e := newExplosion(rate, 1)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := e.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(explosionDuration); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if e.Err() != nil {
		t.Errorf("Err() = %v", e.Err())
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(newExplosion(beep.SampleRate(8000), 2), 0)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %f, expected silence", i, buf[i][0])
		}
	}
}
