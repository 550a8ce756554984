package service

import (
	"context"

	"github.com/forgo/shows/api/internal/model"
)

// ShowRepository defines the interface for show storage
type ShowRepository interface {
	List(ctx context.Context) ([]*model.Show, error)
	GetByID(ctx context.Context, id int) (*model.Show, error)
	Create(ctx context.Context, show *model.Show) error
	Update(ctx context.Context, id int, req *model.UpdateShowRequest) (*model.Show, error)
	Delete(ctx context.Context, id int) (bool, error)
	Ping(ctx context.Context) error
}

// ShowService handles show business logic
type ShowService struct {
	repo ShowRepository
}

// ShowServiceConfig holds configuration for the show service
type ShowServiceConfig struct {
	Repo ShowRepository
}

// NewShowService creates a new show service
func NewShowService(cfg ShowServiceConfig) *ShowService {
	return &ShowService{
		repo: cfg.Repo,
	}
}

// GetShow retrieves a show by ID
func (s *ShowService) GetShow(ctx context.Context, id int) (*model.Show, error) {
	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrShowNotFound
	}
	return show, nil
}

// ListShows retrieves the shows with at least minEpisodes episodes seen, in id order
func (s *ShowService) ListShows(ctx context.Context, minEpisodes int) ([]*model.Show, error) {
	shows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Show, 0, len(shows))
	for _, show := range shows {
		if show.EpisodesSeen >= minEpisodes {
			filtered = append(filtered, show)
		}
	}
	return filtered, nil
}

// CreateShow validates and creates a new show
func (s *ShowService) CreateShow(ctx context.Context, req *model.CreateShowRequest) (*model.Show, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	show := &model.Show{
		Name:         *req.Name,
		EpisodesSeen: *req.EpisodesSeen,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

// UpdateShow applies a partial update to an existing show
func (s *ShowService) UpdateShow(ctx context.Context, id int, req *model.UpdateShowRequest) (*model.Show, error) {
	show, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrShowNotFound
	}
	return show, nil
}

// DeleteShow deletes an existing show
func (s *ShowService) DeleteShow(ctx context.Context, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrShowNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrShowNotFound
	}
	return nil
}

// Ping reports whether the backing store is reachable
func (s *ShowService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
