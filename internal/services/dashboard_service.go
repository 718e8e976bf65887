package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"emmanuelos.dev/internal/manifest"
	"emmanuelos.dev/internal/models"
)

// DashboardService owns the dashboard state: the manifest list and the
// loading flag. The list is written once, when the load settles, and is
// read-only afterwards.
type DashboardService struct {
	logger       *zap.Logger
	fetchTimeout time.Duration

	mu      sync.RWMutex
	apps    []models.AppDescriptor
	loading bool
	closed  bool

	once sync.Once
	done chan struct{}
}

// NewDashboardService creates a DashboardService in the loading state.
// A zero fetchTimeout leaves the fetch unbounded.
func NewDashboardService(logger *zap.Logger, fetchTimeout time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		logger:       logger,
		fetchTimeout: fetchTimeout,
		apps:         []models.AppDescriptor{},
		loading:      true,
		done:         make(chan struct{}),
	}
}

// Start runs Load in the background
func (s *DashboardService) Start(ctx context.Context, src manifest.Source) {
	go s.Load(ctx, src)
}

// Load reads the manifest from src. Only the first call does any work.
// A failed read is logged and leaves the list empty; either way the
// service stops loading.
func (s *DashboardService) Load(ctx context.Context, src manifest.Source) {
	s.once.Do(func() {
		defer close(s.done)

		if s.isClosed() {
			return
		}

		if s.fetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
		}

		started := time.Now()
		m, err := src.Fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			s.logger.Debug("Discarding manifest load completed after close")
			return
		}
		switch {
		case errors.Is(err, context.Canceled):
			// shutdown, not a manifest problem
			s.logger.Debug("Manifest load canceled", zap.Error(err))
		case err != nil:
			s.logger.Warn("Failed to fetch apps", zap.Error(err))
		default:
			s.apps = m.Apps
			s.logger.Info("Manifest loaded",
				zap.Int("apps", len(m.Apps)),
				zap.Duration("took", time.Since(started)))
		}
		s.loading = false
	})
}

// Done is closed once Load has returned
func (s *DashboardService) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the load settles or ctx ends
func (s *DashboardService) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the dashboard down. A load still in flight is discarded
// when it completes.
func (s *DashboardService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *DashboardService) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Loading reports whether the manifest load is still pending
func (s *DashboardService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Apps returns a copy of the whole manifest list
func (s *DashboardService) Apps() []models.AppDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.apps)
}

// Categories returns the derived category set
func (s *DashboardService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DeriveCategories(s.apps)
}

// GetBySlug returns a specific app by slug
func (s *DashboardService) GetBySlug(slug string) (*models.AppDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.apps {
		if s.apps[i].Slug == slug {
			app := s.apps[i]
			return &app, nil
		}
	}
	return nil, fmt.Errorf("app not found: %s", slug)
}

// Select resolves a requested filter to a member of the category set,
// falling back to "All".
func (s *DashboardService) Select(category string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selectCategory(DeriveCategories(s.apps), category)
}

// View computes the derived view for the requested filter from a single
// snapshot of the state.
func (s *DashboardService) View(category string) models.DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loading {
		return models.DashboardView{
			Loading:    true,
			Selected:   models.AllCategory,
			Categories: []string{models.AllCategory},
			Apps:       []models.AppDescriptor{},
		}
	}

	categories := DeriveCategories(s.apps)
	selected := selectCategory(categories, category)
	return models.DashboardView{
		Selected:   selected,
		Categories: categories,
		Apps:       FilterApps(s.apps, selected),
		Total:      len(s.apps),
	}
}

func selectCategory(categories []string, category string) string {
	if slices.Contains(categories, category) {
		return category
	}
	return models.AllCategory
}
