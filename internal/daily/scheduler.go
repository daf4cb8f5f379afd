package daily

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher prepares content for the day containing now.
type Refresher interface {
	Refresh(ctx context.Context, now time.Time) error
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(ctx context.Context, now time.Time) error

func (f RefreshFunc) Refresh(ctx context.Context, now time.Time) error { return f(ctx, now) }

type namedRefresher struct {
	name string
	r    Refresher
}

// Scheduler runs registered refreshers at local midnight, so cached picks
// roll over to the new day without waiting for a viewer.
type Scheduler struct {
	engine  *cron.Cron
	loc     *time.Location
	log     *zap.Logger
	now     func() time.Time
	timeout time.Duration

	mu         sync.Mutex
	refreshers []namedRefresher
	onRefresh  func(time.Time)
}

// NewScheduler builds a scheduler that fires at midnight in loc.
func NewScheduler(loc *time.Location, log *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		engine:  cron.New(cron.WithLocation(loc)),
		loc:     loc,
		log:     log,
		now:     time.Now,
		timeout: time.Minute,
	}
}

// Register adds a refresher run on every tick.
func (s *Scheduler) Register(name string, r Refresher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshers = append(s.refreshers, namedRefresher{name: name, r: r})
}

// OnRefresh sets a callback invoked after each scheduled refresh.
func (s *Scheduler) OnRefresh(fn func(time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

// Start schedules the midnight job and starts the cron engine.
func (s *Scheduler) Start() error {
	if _, err := s.engine.AddFunc("@midnight", s.tick); err != nil {
		return fmt.Errorf("scheduling midnight refresh: %w", err)
	}
	s.log.Info("daily scheduler started", zap.String("location", s.loc.String()))
	s.engine.Start()
	return nil
}

// Stop stops the engine and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.engine.Stop().Done()
	s.log.Info("daily scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn("midnight refresh incomplete", zap.Error(err))
	}

	s.mu.Lock()
	fn := s.onRefresh
	s.mu.Unlock()
	if fn != nil {
		fn(s.now().In(s.loc))
	}
}

// Refresh runs every registered refresher for the current local day and
// joins their errors. One failure does not stop the others.
func (s *Scheduler) Refresh(ctx context.Context) error {
	s.mu.Lock()
	rs := append([]namedRefresher(nil), s.refreshers...)
	s.mu.Unlock()

	now := s.now().In(s.loc)
	var errs []error
	for _, nr := range rs {
		if err := nr.r.Refresh(ctx, now); err != nil {
			s.log.Warn("refresh failed", zap.String("refresher", nr.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", nr.name, err))
			continue
		}
		s.log.Debug("refreshed", zap.String("refresher", nr.name))
	}
	return errors.Join(errs...)
}
