package mock

import (
	"context"
	cl "record-shop/pkg/catelog"
)

// Repository implements catelog.Repository with injectable functions. Calls
// records the name of every method invoked, in order.
type Repository struct {
	FindAllFn    func(ctx context.Context) ([]cl.Album, error)
	FindByIDFn   func(ctx context.Context, id int64) (cl.Album, bool, error)
	SaveFn       func(ctx context.Context, a cl.Album) (cl.Album, error)
	DeleteByIDFn func(ctx context.Context, id int64) error

	Calls []string
}

// FindAll calls the Repository's FindAllFn.
func (r *Repository) FindAll(ctx context.Context) ([]cl.Album, error) {
	r.Calls = append(r.Calls, "FindAll")
	return r.FindAllFn(ctx)
}

// FindByID calls the Repository's FindByIDFn.
func (r *Repository) FindByID(ctx context.Context, id int64) (cl.Album, bool, error) {
	r.Calls = append(r.Calls, "FindByID")
	return r.FindByIDFn(ctx, id)
}

// Save calls the Repository's SaveFn.
func (r *Repository) Save(ctx context.Context, a cl.Album) (cl.Album, error) {
	r.Calls = append(r.Calls, "Save")
	return r.SaveFn(ctx, a)
}

// DeleteByID calls the Repository's DeleteByIDFn.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	r.Calls = append(r.Calls, "DeleteByID")
	return r.DeleteByIDFn(ctx, id)
}

var _ cl.Repository = (*Repository)(nil)
