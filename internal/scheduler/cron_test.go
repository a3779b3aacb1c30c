package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsInvalidCron(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := NewCronRunner("not a cron", logger)

	err := r.Run(context.Background(), func(context.Context) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron expression")
}

func TestRunStopsWithContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := NewCronRunner("0 3 * * *", logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, func(context.Context) error { return nil })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
	assert.Equal(t, "scheduler stopped", hook.LastEntry().Message)
}
