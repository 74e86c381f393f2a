package auction

import (
	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const closeTimeout = 30 * time.Second

type closer interface {
	CloseAuction(ctx context.Context, lotID string) (model.Lot, *model.Bid, error)
}

type countdown struct {
	stop     chan struct{}
	deadline time.Time
}

// Scheduler runs the per-lot auto-close countdowns. Countdowns live only in
// this process: if it stops, the lot stays open until closed by hand.
type Scheduler struct {
	closer   closer
	duration time.Duration

	mu       sync.Mutex
	timers   map[string]*countdown
	shutdown chan struct{}
	stopped  bool
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler with the given default countdown
func NewScheduler(c closer, duration time.Duration) *Scheduler {
	return &Scheduler{
		closer:   c,
		duration: duration,
		timers:   make(map[string]*countdown),
		shutdown: make(chan struct{}),
	}
}

// Schedule starts or restarts the countdown for lotID and returns its deadline
func (s *Scheduler) Schedule(lotID string, d time.Duration) (time.Time, error) {
	if d <= 0 {
		d = s.duration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return time.Time{}, fmt.Errorf("auction: countdown scheduler is shut down")
	}
	if existing, ok := s.timers[lotID]; ok {
		close(existing.stop)
	}

	cd := &countdown{stop: make(chan struct{}), deadline: time.Now().Add(d)}
	s.timers[lotID] = cd

	timer := time.NewTimer(d)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer timer.Stop()

		select {
		case <-timer.C:
			s.fire(lotID, cd)
		case <-cd.stop:
		case <-s.shutdown:
		}
	}()

	utils.Info("auction: countdown started", map[string]any{"lot_id": lotID, "seconds": d.Seconds()})
	return cd.deadline, nil
}

// Cancel stops the countdown for lotID and reports whether one was running
func (s *Scheduler) Cancel(lotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cd, ok := s.timers[lotID]
	if !ok {
		return false
	}
	close(cd.stop)
	delete(s.timers, lotID)
	return true
}

// Pending returns the number of running countdowns
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown stops every countdown and waits for in-flight closes to finish
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.shutdown)
		s.timers = make(map[string]*countdown)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) fire(lotID string, cd *countdown) {
	s.mu.Lock()
	if current, ok := s.timers[lotID]; !ok || current != cd {
		s.mu.Unlock()
		return
	}
	delete(s.timers, lotID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if _, _, err := s.closer.CloseAuction(ctx, lotID); err != nil {
		if errors.Is(err, biddingerrors.ErrInvalidTransition) {
			utils.Debug("auction: countdown fired on a lot that is no longer open", map[string]any{"lot_id": lotID})
			return
		}
		utils.Error("auction: countdown failed to close lot", map[string]any{"lot_id": lotID, "error": err.Error()})
	}
}
