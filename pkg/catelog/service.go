package catelog

import (
	"context"

	"github.com/twitsprout/tools"
)

// Repository is the storage the Service persists albums through.
//
// FindByID reports a missing album with a false bool rather than an error.
// Save inserts an album with a zero ID, assigning a new ID, and otherwise
// overwrites the album stored under a.ID.
type Repository interface {
	FindAll(ctx context.Context) ([]Album, error)
	FindByID(ctx context.Context, id int64) (Album, bool, error)
	Save(ctx context.Context, a Album) (Album, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service validates albums and applies mutations to a Repository. Errors
// returned by the Repository are passed back unchanged.
type Service struct {
	repo   Repository
	logger tools.Logger
}

// NewService returns a Service backed by repo.
func NewService(repo Repository, logger tools.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListAlbums returns every album in insertion order.
func (s *Service) ListAlbums(ctx context.Context) (ListAlbumsRes, error) {
	albums, err := s.repo.FindAll(ctx)
	if err != nil {
		return ListAlbumsRes{}, err
	}
	if albums == nil {
		albums = []Album{}
	}
	return ListAlbumsRes{Albums: albums}, nil
}

// GetAlbum returns the album stored under id.
func (s *Service) GetAlbum(ctx context.Context, id int64) (GetAlbumRes, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return GetAlbumRes{}, err
	}
	return GetAlbumRes{Album: &a}, nil
}

// CreateAlbum validates the album and stores it under a newly assigned id.
// Any id on the request is ignored.
func (s *Service) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (CreateAlbumResponse, error) {
	if err := validateAlbum(req.Album); err != nil {
		return CreateAlbumResponse{}, err
	}

	a := req.Album
	a.ID = 0
	saved, err := s.repo.Save(ctx, a)
	if err != nil {
		return CreateAlbumResponse{}, err
	}

	s.logger.Info("album created",
		"album_id", saved.ID,
	)
	return CreateAlbumResponse{Album: &saved}, nil
}

// UpdateAlbum replaces every field of the album stored under req.ID with the
// fields of req.Album. Validation runs before the existence check.
func (s *Service) UpdateAlbum(ctx context.Context, req UpdateAlbumRequest) (UpdateAlbumResponse, error) {
	if err := validateAlbum(req.Album); err != nil {
		return UpdateAlbumResponse{}, err
	}
	if _, err := s.find(ctx, req.ID); err != nil {
		return UpdateAlbumResponse{}, err
	}

	a := req.Album
	a.ID = req.ID
	saved, err := s.repo.Save(ctx, a)
	if err != nil {
		return UpdateAlbumResponse{}, err
	}

	s.logger.Info("album updated",
		"album_id", saved.ID,
	)
	return UpdateAlbumResponse{Album: &saved}, nil
}

// DeleteAlbum removes the album stored under id and returns it as it was
// before removal.
func (s *Service) DeleteAlbum(ctx context.Context, id int64) (DeleteAlbumResponse, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return DeleteAlbumResponse{}, err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return DeleteAlbumResponse{}, err
	}

	s.logger.Info("album deleted",
		"album_id", id,
	)
	return DeleteAlbumResponse{Album: &a}, nil
}

func (s *Service) find(ctx context.Context, id int64) (Album, error) {
	a, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Album{}, err
	}
	if !ok {
		return Album{}, &NotFoundError{ID: id}
	}
	return a, nil
}

func validateAlbum(a Album) error {
	if invalid := Validate(a).Invalid(); len(invalid) > 0 {
		return &InvalidAttributesError{Fields: invalid}
	}
	return nil
}
