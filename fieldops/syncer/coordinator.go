package syncer

import (
	"context"
	"fmt"
	"sync/atomic"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/fieldops/store"
)

// AttendanceAPI submits one batch to the central system of record. The batch
// is safe to retry with identical content; the server dedups by record id.
type AttendanceAPI interface {
	Submit(ctx context.Context, records []model.AttendanceRecord) error
}

// ConnectivityChecker reports network reachability. Checked, never assumed.
type ConnectivityChecker interface {
	Online() bool
}

type Reason string

const (
	ReasonOk             Reason = "ok"
	ReasonOffline        Reason = "offline"
	ReasonNothingToSync  Reason = "nothing to sync"
	ReasonAlreadyRunning Reason = "sync already in progress"
	ReasonSubmitFailed   Reason = "submit failed"
)

// Result of one Sync call. Offline and NothingToSync are no-ops, not
// failures of the sync machinery; Err is set only for ReasonSubmitFailed.
type Result struct {
	Success bool
	Reason  Reason
	Synced  int
	Err     error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Reason, r.Err)
	}
	if r.Reason == ReasonOk {
		return fmt.Sprintf("synced %d record(s)", r.Synced)
	}
	return string(r.Reason)
}

// Coordinator uploads the unsynced buffer as a single batch and, on success,
// locks exactly the submitted snapshot. Only one sync runs at a time; an
// overlapping call is rejected rather than queued.
type Coordinator struct {
	store    *store.RecordStore
	api      AttendanceAPI
	network  ConnectivityChecker
	inFlight atomic.Bool
}

func New(s *store.RecordStore, api AttendanceAPI, network ConnectivityChecker) *Coordinator {
	return &Coordinator{store: s, api: api, network: network}
}

// Sync snapshots all currently-unsynced records, submits them in one call,
// and marks exactly that snapshot synced+locked on success. Any submission
// failure, including an ambiguous timeout, leaves the buffer untouched.
func (c *Coordinator) Sync(ctx context.Context) Result {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{Reason: ReasonAlreadyRunning}
	}
	defer c.inFlight.Store(false)

	if !c.network.Online() {
		return Result{Reason: ReasonOffline}
	}

	batch := c.store.Unsynced()
	if len(batch) == 0 {
		return Result{Success: true, Reason: ReasonNothingToSync}
	}

	if err := c.api.Submit(ctx, batch); err != nil {
		return Result{Reason: ReasonSubmitFailed, Err: err}
	}

	// Matched by snapshot identity; records captured after the snapshot was
	// taken stay unsynced.
	if err := c.store.MarkSynced(batch); err != nil {
		// The server accepted the batch but the local flush failed. The
		// records stay eligible for the next sync; the server dedups by id.
		return Result{Reason: ReasonSubmitFailed, Err: err}
	}

	return Result{Success: true, Reason: ReasonOk, Synced: len(batch)}
}
