package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ambe.com/fieldops/fieldops/geofence"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/fieldops/store"
	"github.com/google/uuid"
)

// State of one employee-day inside the capture flow. Capturing is transient
// (held only while the camera call is in flight); the observable states are
// the other three.
type State string

const (
	StateNoRecord  State = "NoRecord"
	StateCapturing State = "Capturing"
	StateCandidate State = "Candidate"
	StateCommitted State = "Committed"
)

var (
	// ErrCameraUnavailable wraps a failed camera acquisition. Recoverable:
	// the flow returns to NoRecord and the operator can retry.
	ErrCameraUnavailable = errors.New("camera unavailable")
	// ErrOutsideBoundary is the geofence policy rejection, distinct from
	// transient errors so the UI can show the boundary message.
	ErrOutsideBoundary = errors.New("outside site boundary")
	// ErrNoPositionFix means the gate is enabled but no fix has arrived yet.
	ErrNoPositionFix = errors.New("no position fix yet")
	// ErrNoPendingCapture means Confirm/Retake was called without a candidate.
	ErrNoPendingCapture = errors.New("no pending capture")
)

// Camera is an on-demand single-shot capture returning an image payload
// (data URL) or a failure.
type Camera interface {
	Capture(ctx context.Context) (string, error)
}

// PositionSource hands out the last cached fix without blocking. ok is false
// while no fix has been acquired; callers must treat that as unknown, never
// as (0, 0).
type PositionSource interface {
	Current() (model.GeoPoint, bool)
}

type Config struct {
	Site           model.Site
	SupervisorName string
	DeviceID       string

	// GeofenceGateEnabled rejects captures outside the site boundary.
	// Deployments run with the gate off during field calibration.
	GeofenceGateEnabled bool

	// Now overrides the clock in tests.
	Now func() time.Time
}

type candidate struct {
	date     string
	photo    string
	location *model.GeoPoint
}

// Workflow drives photo/location capture for one site's employees and
// commits candidate records into the buffer.
type Workflow struct {
	store     *store.RecordStore
	camera    Camera
	positions PositionSource
	cfg       Config
	now       func() time.Time

	mu         sync.Mutex
	candidates map[string]candidate // keyed by employeeID
}

func NewWorkflow(s *store.RecordStore, camera Camera, positions PositionSource, cfg Config) *Workflow {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Workflow{
		store:      s,
		camera:     camera,
		positions:  positions,
		cfg:        cfg,
		now:        now,
		candidates: map[string]candidate{},
	}
}

// State derives the employee's current capture state.
func (w *Workflow) State(employeeID string) State {
	w.mu.Lock()
	_, pending := w.candidates[employeeID]
	w.mu.Unlock()

	if pending {
		return StateCandidate
	}
	if _, ok := w.store.Get(employeeID); ok {
		return StateCommitted
	}
	return StateNoRecord
}

// Begin starts a capture for the employee on the given day: checks the
// geofence gate, acquires the camera, and holds the result as an
// unconfirmed candidate. Camera failure aborts back to NoRecord.
func (w *Workflow) Begin(ctx context.Context, employeeID, date string) error {
	if existing, ok := w.store.Get(employeeID); ok && existing.IsLocked {
		return fmt.Errorf("employee %s: %w", employeeID, store.ErrRecordLocked)
	}

	// The gate reads only the cached fix; it never touches the network.
	pos, haveFix := w.positions.Current()
	if w.cfg.GeofenceGateEnabled {
		if !haveFix {
			return ErrNoPositionFix
		}
		if res := geofence.Classify(pos, w.cfg.Site); !res.InRange {
			return fmt.Errorf("%w: %.0fm from site, radius %.0fm",
				ErrOutsideBoundary, res.DistanceMeters, w.cfg.Site.GeofenceRadius)
		}
	}

	photo, err := w.camera.Capture(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}

	cand := candidate{date: date, photo: photo}
	if haveFix {
		cand.location = &model.GeoPoint{Lat: pos.Lat, Lng: pos.Lng}
	}

	w.mu.Lock()
	w.candidates[employeeID] = cand
	w.mu.Unlock()
	return nil
}

// Retake discards the candidate photo and captures again. A camera failure
// drops the candidate entirely, same as an aborted Begin.
func (w *Workflow) Retake(ctx context.Context, employeeID string) error {
	w.mu.Lock()
	cand, ok := w.candidates[employeeID]
	w.mu.Unlock()
	if !ok {
		return ErrNoPendingCapture
	}

	w.Cancel(employeeID)
	return w.Begin(ctx, employeeID, cand.date)
}

// Confirm commits the candidate as a Present record. The location snapshot
// may be nil when no fix was available at capture time; that is allowed.
func (w *Workflow) Confirm(employeeID string) error {
	w.mu.Lock()
	cand, ok := w.candidates[employeeID]
	w.mu.Unlock()
	if !ok {
		return ErrNoPendingCapture
	}

	rec := model.AttendanceRecord{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		SiteID:         w.cfg.Site.ID,
		Date:           cand.date,
		Status:         model.StatusPresent,
		CheckInTime:    w.now().Format("15:04"),
		PhotoURL:       cand.photo,
		Location:       cand.location,
		SupervisorName: w.cfg.SupervisorName,
		DeviceID:       w.cfg.DeviceID,
	}

	if err := w.store.Upsert(employeeID, rec); err != nil {
		return err
	}

	w.mu.Lock()
	delete(w.candidates, employeeID)
	w.mu.Unlock()
	return nil
}

// Cancel discards any pending candidate with no residual state. Safe to call
// at any point; the operator navigating away mid-capture lands here.
func (w *Workflow) Cancel(employeeID string) {
	w.mu.Lock()
	delete(w.candidates, employeeID)
	w.mu.Unlock()
}

// SetStatus is the manual toggle entry point: it marks an employee
// Absent/WeeklyOff/etc. without the camera states. An existing record keeps
// its identity and photo (an undo after a photo capture retains the photo as
// history); a locked record rejects the toggle.
func (w *Workflow) SetStatus(employeeID, date string, status model.AttendanceStatus) error {
	rec, ok := w.store.Get(employeeID)
	if ok && rec.IsLocked {
		return fmt.Errorf("employee %s: %w", employeeID, store.ErrRecordLocked)
	}

	if !ok {
		rec = model.AttendanceRecord{
			ID:             uuid.NewString(),
			EmployeeID:     employeeID,
			SiteID:         w.cfg.Site.ID,
			SupervisorName: w.cfg.SupervisorName,
			DeviceID:       w.cfg.DeviceID,
		}
	}
	rec.Date = date
	rec.Status = status

	return w.store.Upsert(employeeID, rec)
}
