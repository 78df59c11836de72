package usecase

import "time"

// Scheduler runs one-shot callbacks after a delay. Callbacks are not
// cancellable; the controller guards them with a round generation instead.
type Scheduler interface {
	AfterFunc(delay time.Duration, task func())
}

type timerScheduler struct{}

func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(delay time.Duration, task func()) {
	time.AfterFunc(delay, task)
}
