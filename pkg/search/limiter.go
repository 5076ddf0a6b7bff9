package search

import (
	"context"
	"sync/atomic"
	"time"
	"unsafe"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1 // Stopped by user, by calling .Stop() or context cancellation
	StopMovetime             = 2 // Time limit reached
	StopNodes                = 4 // Node limit reached
	StopDepth                = 8 // Search finished at the requested depth
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type _Timer struct {
	start    time.Time
	duration time.Duration
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now(), -1}
}

// In milliseconds, negative value disables the timer
func (t *_Timer) Movetime(movetime int) {
	if movetime < 0 {
		t.duration = -1
	} else {
		t.duration = time.Duration(movetime) * time.Millisecond
	}
}

func (t *_Timer) Reset() {
	t.start = time.Now()
}

func (t *_Timer) IsEnd() bool {
	return t.duration >= 0 && time.Since(t.start) >= t.duration
}

// Elapsed milliseconds, at least 1 so it can be used as a divisor
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}

// Decides when the search has to stop. Checked by the engine at the top of every node.
type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

// Reset the flags and start the clock, called on search setup
func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Get the stop signal, context cancellation sets it as well
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time in ms, since the last Reset
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

func toMask(val bool, offset int) int {
	return int(*(*byte)(unsafe.Pointer(&val))) << offset
}

// Bitmask of the reached limits, same layout as StopReason
func (l *Limiter) LimitMask(nodes uint32) int {
	stop := l.Stop()
	if l.limits.Infinite {
		return toMask(stop, 0)
	}

	return toMask(stop, 0) |
		toMask(l.Timer.IsEnd(), 1) |
		toMask(l.limits.Nodes <= nodes, 2)
}

// Whether the search may go on
func (l *Limiter) Ok(nodes uint32) bool {
	return l.LimitMask(nodes) == 0
}

// Set the stop reason based on current state, called once after the search ends.
// 'completed' tells if the last iteration finished at its full depth.
func (l *Limiter) EvaluateStopReason(nodes uint32, completed bool) {
	reason := StopReason(l.LimitMask(nodes))
	if completed {
		reason |= StopDepth
	}
	l.reason = reason
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
