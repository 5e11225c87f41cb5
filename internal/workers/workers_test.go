// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
	block    bool
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.block {
		<-ctx.Done()
	}
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	require.NoError(t, New(w1, w2, w3).Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, New(&mockWorker{block: true}, &mockWorker{block: true}).Run(ctx))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	errBoom := errors.New("boom")
	blocking := &mockWorker{block: true}

	err := New(blocking, &mockWorker{err: errBoom}).Run(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(1), blocking.runCount.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	require.NoError(t, New().Run(context.Background()))
	require.NoError(t, (&Workers{}).Run(context.Background()))
}
