package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	cutoffs []time.Time
	n       int64
	err     error
}

func (f *fakeStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.n, f.err
}

func TestPruneOnce_UsesMaxAge(t *testing.T) {
	store := &fakeStore{n: 4}
	p, err := New(store, 24*time.Hour, "@daily", nil)
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }

	n, err := p.PruneOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.Len(t, store.cutoffs, 1)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), store.cutoffs[0])
}

func TestPruneOnce_StoreError(t *testing.T) {
	p, err := New(&fakeStore{err: errors.New("db down")}, time.Hour, "*/5 * * * *", nil)
	require.NoError(t, err)
	_, err = p.PruneOnce(context.Background())
	assert.Error(t, err)
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	_, err := New(&fakeStore{}, time.Hour, "every tuesday", nil)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	p, err := New(&fakeStore{}, time.Hour, "@hourly", nil)
	require.NoError(t, err)
	p.Start()
	p.Stop()
}
