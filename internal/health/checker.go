// Package health holds the readiness sub-checks. Each checker is evaluated
// fresh on every probe request; nothing is memoized between requests.
package health

import (
	"context"
)

type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// AppChecker reports the process itself. It has no dependencies, so it can
// only ever report ok.
type AppChecker struct{}

func NewAppChecker() *AppChecker {
	return &AppChecker{}
}

func (c *AppChecker) Name() string {
	return "application"
}

func (c *AppChecker) Check(ctx context.Context) error {
	return nil
}
