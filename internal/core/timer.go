package core

import "time"

// FrameTimer measures the time between frames and keeps a smoothed average
// for reporting.
type FrameTimer struct {
	last    time.Time
	delta   time.Duration
	average time.Duration
	frames  uint64
	now     func() time.Time
}

// NewFrameTimer constructs a timer that starts measuring on the first Tick.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{now: time.Now}
}

// Reset forgets the previous frame so the next Tick reports zero.
func (f *FrameTimer) Reset() {
	f.last = time.Time{}
	f.delta = 0
	f.average = 0
	f.frames = 0
}

// Tick marks the start of a new frame and returns the time since the
// previous one. The first call returns zero.
func (f *FrameTimer) Tick() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.delta = now.Sub(f.last)
	f.last = now
	f.frames++
	if f.frames == 1 {
		f.average = f.delta
	} else {
		// Exponential moving average, alpha = 1/16.
		f.average += (f.delta - f.average) / 16
	}
	return f.delta
}

// Delta returns the most recent frame time.
func (f *FrameTimer) Delta() time.Duration { return f.delta }

// Average returns the smoothed frame time.
func (f *FrameTimer) Average() time.Duration { return f.average }

// Frames returns the number of measured frame intervals.
func (f *FrameTimer) Frames() uint64 { return f.frames }

// FPS derives frames per second from the smoothed frame time.
func (f *FrameTimer) FPS() float64 {
	if f.average <= 0 {
		return 0
	}
	return float64(time.Second) / float64(f.average)
}
