package goroutine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu   sync.Mutex
	msgs []string
	done chan struct{}
}

func (l *captureLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	l.msgs = append(l.msgs, fmt.Sprintf(format, args...))
	l.mu.Unlock()
	close(l.done)
}

func TestRecoveryHandler_RecoversPanic(t *testing.T) {
	logger := &captureLogger{done: make(chan struct{})}
	rh := NewRecoveryHandler(logger)

	rh.SafeGo(func() { panic("boom") })

	select {
	case <-logger.done:
	case <-time.After(time.Second):
		t.Fatal("panic не был перехвачен")
	}
	require.Len(t, logger.msgs, 1)
	assert.Contains(t, logger.msgs[0], "boom")
}

func TestRecoveryHandler_PassesContext(t *testing.T) {
	rh := NewRecoveryHandler(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := make(chan error, 1)
	rh.SafeGoWithContext(ctx, func(ctx context.Context) { got <- ctx.Err() })

	select {
	case err := <-got:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("задача не запустилась")
	}
}
