package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/fieldops/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	batches  [][]model.AttendanceRecord
	err      error
	blocked  chan struct{} // when set, Submit waits until closed
	started  chan struct{}
	submitFn func([]model.AttendanceRecord) error
}

func (a *fakeAPI) Submit(ctx context.Context, records []model.AttendanceRecord) error {
	if a.started != nil {
		close(a.started)
	}
	if a.blocked != nil {
		<-a.blocked
	}
	a.mu.Lock()
	a.batches = append(a.batches, records)
	a.mu.Unlock()
	if a.submitFn != nil {
		return a.submitFn(records)
	}
	return a.err
}

func (a *fakeAPI) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.batches)
}

type fakeNetwork struct{ online bool }

func (n *fakeNetwork) Online() bool { return n.online }

type nullStorage struct{}

func (nullStorage) Load() (map[string]model.AttendanceRecord, error) { return nil, nil }
func (nullStorage) Save(map[string]model.AttendanceRecord) error     { return nil }

func newBuffer(t *testing.T, records ...model.AttendanceRecord) *store.RecordStore {
	t.Helper()
	s := store.New(nullStorage{})
	for _, rec := range records {
		require.NoError(t, s.Upsert(rec.EmployeeID, rec))
	}
	return s
}

func rec(id, employeeID string) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:         id,
		EmployeeID: employeeID,
		Date:       "2025-11-05",
		Status:     model.StatusPresent,
	}
}

func TestSyncSuccessLocksBatch(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"), rec("r2", "E2"))
	api := &fakeAPI{}
	c := New(s, api, &fakeNetwork{online: true})

	res := c.Sync(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, ReasonOk, res.Reason)
	assert.Equal(t, 2, res.Synced)
	require.Equal(t, 1, api.calls())
	assert.Len(t, api.batches[0], 2, "both records go in one batch")

	for _, id := range []string{"E1", "E2"} {
		got, ok := s.Get(id)
		require.True(t, ok)
		assert.True(t, got.IsSynced)
		assert.True(t, got.IsLocked)
	}
	assert.Equal(t, 0, s.UnsyncedCount())
}

func TestNoDoubleSync(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"))
	api := &fakeAPI{}
	c := New(s, api, &fakeNetwork{online: true})

	first := c.Sync(context.Background())
	require.True(t, first.Success)

	second := c.Sync(context.Background())
	assert.True(t, second.Success)
	assert.Equal(t, ReasonNothingToSync, second.Reason)
	assert.Equal(t, 1, api.calls(), "already-synced records are never resubmitted")
}

func TestSubmitFailureLeavesBufferUntouched(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"), rec("r2", "E2"))
	before := s.All()

	api := &fakeAPI{err: errors.New("http 502")}
	c := New(s, api, &fakeNetwork{online: true})

	res := c.Sync(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, ReasonSubmitFailed, res.Reason)
	assert.Error(t, res.Err)

	assert.ElementsMatch(t, before, s.All(), "state equality before and after a failed submit")
	assert.Equal(t, 2, s.UnsyncedCount())
}

func TestOfflineIsANoOp(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"))
	api := &fakeAPI{}
	network := &fakeNetwork{online: false}
	c := New(s, api, network)

	res := c.Sync(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, ReasonOffline, res.Reason)
	assert.NoError(t, res.Err)
	assert.Equal(t, 0, api.calls())
	assert.Equal(t, 1, s.UnsyncedCount())

	// Network restored: the same record syncs and locks.
	network.online = true
	res = c.Sync(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Synced)

	got, _ := s.Get("E1")
	assert.True(t, got.IsLocked)
}

func TestBatchFailureLocksNothing(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"), rec("r2", "E2"))
	api := &fakeAPI{err: errors.New("timeout")}
	c := New(s, api, &fakeNetwork{online: true})

	res := c.Sync(context.Background())
	require.False(t, res.Success)

	for _, id := range []string{"E1", "E2"} {
		got, _ := s.Get(id)
		assert.False(t, got.IsLocked)
		assert.False(t, got.IsSynced)
	}
}

func TestOverlappingSyncRejected(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"))
	api := &fakeAPI{
		blocked: make(chan struct{}),
		started: make(chan struct{}),
	}
	c := New(s, api, &fakeNetwork{online: true})

	done := make(chan Result, 1)
	go func() { done <- c.Sync(context.Background()) }()
	<-api.started

	second := c.Sync(context.Background())
	assert.Equal(t, ReasonAlreadyRunning, second.Reason)
	assert.False(t, second.Success)

	close(api.blocked)
	first := <-done
	assert.True(t, first.Success)
	assert.Equal(t, 1, api.calls())
}

func TestCaptureDuringFlightIsNotLocked(t *testing.T) {
	s := newBuffer(t, rec("r1", "E1"))
	api := &fakeAPI{}
	// Submit succeeds, but while it is "in flight" a new record for E1
	// replaces the snapshot's content.
	api.submitFn = func([]model.AttendanceRecord) error {
		return s.Upsert("E1", rec("r2", "E1"))
	}
	c := New(s, api, &fakeNetwork{online: true})

	res := c.Sync(context.Background())
	require.True(t, res.Success)

	got, _ := s.Get("E1")
	assert.Equal(t, "r2", got.ID)
	assert.False(t, got.IsLocked, "the post-snapshot capture must not be silently frozen")
	assert.Equal(t, 1, s.UnsyncedCount())
}
