package repository

import (
	"context"
	"errors"

	"github.com/forgo/shows/api/internal/database"
	"github.com/forgo/shows/api/internal/model"
)

// ShowsCollection is the store collection holding shows
const ShowsCollection = "shows"

// ShowRepository handles show data access
type ShowRepository struct {
	store database.Store
}

// NewShowRepository creates a new show repository
func NewShowRepository(store database.Store) *ShowRepository {
	return &ShowRepository{store: store}
}

// List retrieves all shows ordered by id
func (r *ShowRepository) List(ctx context.Context) ([]*model.Show, error) {
	records, err := r.store.Get(ctx, ShowsCollection)
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.Show](records)
}

// GetByID retrieves a show by ID; returns nil if it does not exist
func (r *ShowRepository) GetByID(ctx context.Context, id int) (*model.Show, error) {
	rec, err := r.store.GetByID(ctx, ShowsCollection, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Show](rec)
}

// Create creates a new show and sets its ID
func (r *ShowRepository) Create(ctx context.Context, show *model.Show) error {
	rec, err := r.store.Create(ctx, ShowsCollection, database.Record{
		"name":          show.Name,
		"episodes_seen": show.EpisodesSeen,
	})
	if err != nil {
		return err
	}

	created, err := decodeRecord[model.Show](rec)
	if err != nil {
		return err
	}
	*show = *created
	return nil
}

// Update applies the set fields of req; returns nil if the show does not exist
func (r *ShowRepository) Update(ctx context.Context, id int, req *model.UpdateShowRequest) (*model.Show, error) {
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	patch := database.Record{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.EpisodesSeen != nil {
		patch["episodes_seen"] = *req.EpisodesSeen
	}

	rec, err := r.store.UpdateByID(ctx, ShowsCollection, id, patch)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Show](rec)
}

// Delete deletes a show by ID; reports false if it did not exist
func (r *ShowRepository) Delete(ctx context.Context, id int) (bool, error) {
	if err := r.store.DeleteByID(ctx, ShowsCollection, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Ping checks that the underlying store is reachable
func (r *ShowRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
