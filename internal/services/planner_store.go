package services

import (
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrNotLoaded = errors.New("no distance matrix loaded")

// reloadTimeout bounds a scheduled reload; remote matrix sources may be slow.
const reloadTimeout = 2 * time.Minute

// PlannerStore owns the current Planner snapshot. Readers never lock:
// a reload builds a complete new Planner and swaps the pointer.
type PlannerStore struct {
	source   ports.MatrixSource
	taxonomy ports.TaxonomySource
	opts     PlannerOptions

	current atomic.Pointer[Planner]
	reload  sync.Mutex

	scheduler *cron.Cron
}

// NewPlannerStore creates an empty store; call Reload before serving.
// taxonomy may be nil to keep opts.Taxonomy.
func NewPlannerStore(source ports.MatrixSource, taxonomy ports.TaxonomySource, opts PlannerOptions) *PlannerStore {
	return &PlannerStore{source: source, taxonomy: taxonomy, opts: opts}
}

// Current returns the active planner.
func (s *PlannerStore) Current() (*Planner, error) {
	p := s.current.Load()
	if p == nil {
		return nil, ErrNotLoaded
	}
	return p, nil
}

// Reload fetches the matrix (and taxonomy, when configured) and swaps in a
// new planner. On failure the previous planner stays active.
func (s *PlannerStore) Reload(ctx context.Context) (err error) {
	defer obs.Time(ctx, "planner.Reload")(&err)

	s.reload.Lock()
	defer s.reload.Unlock()

	m, err := s.source.LoadMatrix(ctx)
	if err != nil {
		return fmt.Errorf("reload planner: load matrix: %w", err)
	}

	opts := s.opts
	if s.taxonomy != nil {
		cats, err := s.taxonomy.LoadTaxonomy(ctx)
		if err != nil {
			return fmt.Errorf("reload planner: load taxonomy: %w", err)
		}
		if len(cats) > 0 {
			opts.Taxonomy = Taxonomy(cats)
		}
	}

	p, err := NewPlanner(m, opts)
	if err != nil {
		return fmt.Errorf("reload planner: %w", err)
	}

	s.current.Store(p)
	log.Printf("planner reloaded locations=%d", p.Graph().Len())
	return nil
}

// Schedule reloads on a cron spec (standard five-field syntax) until Stop.
func (s *PlannerStore) Schedule(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		if err := s.Reload(ctx); err != nil {
			log.Printf("scheduled reload failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule reload %q: %w", spec, err)
	}

	c.Start()
	s.scheduler = c
	log.Printf("planner reload scheduled spec=%q", spec)
	return nil
}

// Stop halts scheduled reloads and waits for a running one to finish.
func (s *PlannerStore) Stop() {
	if s.scheduler == nil {
		return
	}
	<-s.scheduler.Stop().Done()
	s.scheduler = nil
}
