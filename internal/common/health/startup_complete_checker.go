package health

import (
	"errors"
	"sync/atomic"
)

// StartupCompleteChecker reports healthy once the application has marked its
// startup as complete.
type StartupCompleteChecker struct {
	complete atomic.Bool
}

func (checker *StartupCompleteChecker) Check() error {
	if checker.complete.Load() {
		return nil
	}
	return errors.New("startup not yet complete")
}

func (checker *StartupCompleteChecker) MarkComplete() {
	checker.complete.Store(true)
}
