package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the application *log.Logger in the dependency container.
type InitLogger struct{}

// Initialize registers a logger writing to stdout.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
