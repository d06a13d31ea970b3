package sqlstore

import (
	"context"
	cl "record-shop/pkg/catelog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkg/errors"
)

const tableAlbums = "albums"

const (
	albumsColumnID           = `"id"`
	albumsColumnName         = `"name"`
	albumsColumnArtist       = `"artist"`
	albumsColumnGenre        = `"genre"`
	albumsColumnDateReleased = `"date_released"`
	albumsColumnPrice        = `"price"`
	albumsColumnStock        = `"stock"`
	albumsColumnCreatedAt    = `"created_at"`
	albumsColumnUpdatedAt    = `"updated_at"`
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnName,
	albumsColumnArtist,
	albumsColumnGenre,
	albumsColumnDateReleased,
	albumsColumnPrice,
	albumsColumnStock,
	albumsColumnCreatedAt,
	albumsColumnUpdatedAt,
}

var albumsReturning = returning(albumsColumns)

// FindAll returns every album ordered by id, which is insertion order.
func (s *Store) FindAll(ctx context.Context) ([]cl.Album, error) {
	qv, err := s.buildListAlbumsQuery()
	if err != nil {
		return nil, errors.Wrap(err, "build list albums query")
	}
	r, err := s.queryAlbums(ctx, "list_albums", qv)
	if err != nil {
		return nil, errors.Wrap(err, "execute list albums query")
	}
	return r, nil
}

func (s *Store) buildListAlbumsQuery() (QueryValues, error) {
	q, args, err := s.sb.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		OrderBy(tableColumn(tableAlbums, albumsColumnID) + " ASC").
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

// FindByID returns the album stored under id, and false if there is none.
func (s *Store) FindByID(ctx context.Context, id int64) (cl.Album, bool, error) {
	qv, err := s.buildGetAlbumQuery(id)
	if err != nil {
		return cl.Album{}, false, errors.Wrap(err, "build get album query")
	}
	r, err := s.queryAlbums(ctx, "get_album", qv)
	if err != nil {
		return cl.Album{}, false, errors.Wrap(err, "execute get album query")
	}
	if len(r) == 0 {
		return cl.Album{}, false, nil
	}
	return r[0], true, nil
}

func (s *Store) buildGetAlbumQuery(id int64) (QueryValues, error) {
	q, args, err := s.sb.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{tableColumn(tableAlbums, albumsColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get album build query into SQL string")
}

// Save inserts a when its ID is zero and otherwise overwrites every column of
// the row with a's ID except created_at.
func (s *Store) Save(ctx context.Context, a cl.Album) (cl.Album, error) {
	if a.ID == 0 {
		return s.insertAlbum(ctx, a)
	}
	return s.updateAlbum(ctx, a)
}

func (s *Store) insertAlbum(ctx context.Context, a cl.Album) (cl.Album, error) {
	qv, err := s.buildInsertAlbumQuery(a, s.now())
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "build insert album query")
	}
	r, err := s.queryAlbums(ctx, "insert_album", qv)
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "execute insert album query")
	}
	if len(r) == 0 {
		return cl.Album{}, errors.New("insert album returned no row")
	}
	return r[0], nil
}

func (s *Store) buildInsertAlbumQuery(a cl.Album, now time.Time) (QueryValues, error) {
	q, args, err := s.sb.
		Insert(tableAlbums).
		Columns(
			albumsColumnName,
			albumsColumnArtist,
			albumsColumnGenre,
			albumsColumnDateReleased,
			albumsColumnPrice,
			albumsColumnStock,
			albumsColumnCreatedAt,
			albumsColumnUpdatedAt,
		).
		Values(
			a.Name,
			a.Artist,
			string(a.Genre),
			a.DateReleased,
			a.Price,
			a.Stock,
			now,
			now,
		).
		Suffix(albumsReturning).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "insert album build query into SQL string")
}

func (s *Store) updateAlbum(ctx context.Context, a cl.Album) (cl.Album, error) {
	qv, err := s.buildUpdateAlbumQuery(a, s.now())
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "build update album query")
	}
	r, err := s.queryAlbums(ctx, "update_album", qv)
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "execute update album query")
	}
	if len(r) == 0 {
		return cl.Album{}, &cl.NotFoundError{ID: a.ID}
	}
	return r[0], nil
}

func (s *Store) buildUpdateAlbumQuery(a cl.Album, now time.Time) (QueryValues, error) {
	q, args, err := s.sb.
		Update(tableAlbums).
		Set(albumsColumnName, a.Name).
		Set(albumsColumnArtist, a.Artist).
		Set(albumsColumnGenre, string(a.Genre)).
		Set(albumsColumnDateReleased, a.DateReleased).
		Set(albumsColumnPrice, a.Price).
		Set(albumsColumnStock, a.Stock).
		Set(albumsColumnUpdatedAt, now).
		Where(sq.Eq{albumsColumnID: a.ID}).
		Suffix(albumsReturning).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "update album build query into SQL string")
}

// DeleteByID removes the row stored under id.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	qv, err := s.buildDeleteAlbumQuery(id)
	if err != nil {
		return errors.Wrap(err, "build delete album query")
	}
	err = s.run(ctx, "delete_album", func(ctx context.Context, q Querier) error {
		_, err := q.ExecContext(ctx, qv.query, qv.args...)
		return err
	})
	return errors.Wrap(err, "execute delete album query")
}

func (s *Store) buildDeleteAlbumQuery(id int64) (QueryValues, error) {
	q, args, err := s.sb.
		Delete(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}

var _ cl.Repository = (*Store)(nil)
