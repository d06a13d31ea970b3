package mock

import (
	"context"
	cl "record-shop/pkg/catelog"
)

// AlbumStore defines an interface responsible for Album CRUD.
type AlbumStore struct {
	ListAlbumsFn  func(ctx context.Context) (cl.ListAlbumsRes, error)
	GetAlbumFn    func(ctx context.Context, id int64) (cl.GetAlbumRes, error)
	CreateAlbumFn func(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
	UpdateAlbumFn func(ctx context.Context, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error)
	DeleteAlbumFn func(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error)
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsFn(ctx)
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
	return s.CreateAlbumFn(ctx, req)
}

// GetAlbum proxies the request to the GetAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAlbum(ctx context.Context, id int64) (cl.GetAlbumRes, error) {
	return s.GetAlbumFn(ctx, id)
}

// UpdateAlbum proxies the request to the UpdateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) UpdateAlbum(ctx context.Context, req cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {
	return s.UpdateAlbumFn(ctx, req)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error) {
	return s.DeleteAlbumFn(ctx, id)
}

// Pinger proxies Ping to PingFn.
type Pinger struct {
	PingFn func(ctx context.Context) error
}

// Ping calls the Pinger's PingFn.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.PingFn(ctx)
}
