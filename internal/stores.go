package internal

import (
	"context"
	cl "record-shop/pkg/catelog"
)

// AlbumStore is the album catalog as seen by the request layer.
type AlbumStore interface {
	ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error)
	GetAlbum(ctx context.Context, id int64) (cl.GetAlbumRes, error)
	CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
	UpdateAlbum(ctx context.Context, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error)
	DeleteAlbum(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error)
}

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

var _ AlbumStore = (*cl.Service)(nil)
