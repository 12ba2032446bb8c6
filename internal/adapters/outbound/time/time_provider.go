package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider implements domain.CurrentTimeProvider with the system clock in UTC.
type CurrentTimeProvider struct{}

// Now returns the current UTC time.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the CurrentTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the system clock.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
