package rangelog

import (
	"context"
	"log"
	"time"

	"ambe.com/fieldops/fieldops/geofence"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"github.com/google/uuid"
)

// Sink receives range-transition events. Fire-and-forget: a failed append is
// the sink's loss, never the logger's problem.
type Sink interface {
	Append(ctx context.Context, event model.RangeLogEvent) error
}

type Config struct {
	Site           model.Site
	SupervisorID   string
	SupervisorName string
	DeviceID       string

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Logger classifies every position fix against the site geofence and emits
// one event per in/out transition. Edge-triggered: a run of fixes in the
// same state produces nothing after the first event. This is an audit
// trail, not a correctness path; emission failures are logged and dropped.
type Logger struct {
	sink Sink
	cfg  Config
	now  func() time.Time

	lastInRange *bool
}

func New(sink Sink, cfg Config) *Logger {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Logger{sink: sink, cfg: cfg, now: now}
}

// Observe evaluates one fix. The first fix after startup always emits, so
// the trail records the initial state.
func (l *Logger) Observe(ctx context.Context, pos model.GeoPoint) {
	res := geofence.Classify(pos, l.cfg.Site)

	if l.lastInRange != nil && *l.lastInRange == res.InRange {
		return
	}
	l.lastInRange = utils.Ptr(res.InRange)

	status := model.RangeStatusOut
	if res.InRange {
		status = model.RangeStatusIn
	}

	event := model.RangeLogEvent{
		ID:             uuid.NewString(),
		SupervisorID:   l.cfg.SupervisorID,
		SupervisorName: l.cfg.SupervisorName,
		SiteID:         l.cfg.Site.ID,
		Status:         status,
		Latitude:       pos.Lat,
		Longitude:      pos.Lng,
		Timestamp:      l.now().UTC().Format(time.RFC3339),
		DeviceID:       l.cfg.DeviceID,
	}

	if err := l.sink.Append(ctx, event); err != nil {
		log.Printf("range log append failed, dropping event (%s at %s): %v",
			status, event.Timestamp, err)
	}
}

// Watch consumes a stream of fixes until the context ends or the channel
// closes. Runs independently of attendance capture.
func (l *Logger) Watch(ctx context.Context, fixes <-chan model.GeoPoint) {
	for {
		select {
		case <-ctx.Done():
			return
		case pos, ok := <-fixes:
			if !ok {
				return
			}
			l.Observe(ctx, pos)
		}
	}
}
