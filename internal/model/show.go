package model

// DefaultMinEpisodes is the list filter used when none is given; it matches every show
const DefaultMinEpisodes = -1

// Show represents a tracked TV series
type Show struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EpisodesSeen int    `json:"episodes_seen"`
}

// CreateShowRequest represents a request to create a show.
// Fields are pointers so that a missing key can be told apart from a zero value.
type CreateShowRequest struct {
	Name         *string `json:"name"`
	EpisodesSeen *int    `json:"episodes_seen"`
}

// Validate validates the create show request.
// Errors are reported in field order: name first, then episodes_seen.
func (r *CreateShowRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == nil {
		errors = append(errors, FieldError{
			Field:   "name",
			Message: "Show name cannot be empty",
		})
	}

	if r.EpisodesSeen == nil {
		errors = append(errors, FieldError{
			Field:   "episodes_seen",
			Message: "Episode seen cannot be empty",
		})
	}

	return errors
}

// UpdateShowRequest represents a partial update; nil fields are left unchanged
type UpdateShowRequest struct {
	Name         *string `json:"name,omitempty"`
	EpisodesSeen *int    `json:"episodes_seen,omitempty"`
}

// IsEmpty returns true if the request changes nothing
func (r *UpdateShowRequest) IsEmpty() bool {
	return r.Name == nil && r.EpisodesSeen == nil
}

// Apply copies the set fields onto show
func (r *UpdateShowRequest) Apply(show *Show) {
	if r.Name != nil {
		show.Name = *r.Name
	}
	if r.EpisodesSeen != nil {
		show.EpisodesSeen = *r.EpisodesSeen
	}
}
