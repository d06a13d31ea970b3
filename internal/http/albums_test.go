package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"record-shop/internal/mock"
	cl "record-shop/pkg/catelog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	tm "github.com/twitsprout/tools/mock"
)

var testAlbum = cl.Album{
	ID:           13,
	Name:         "ASTROWORLD",
	Artist:       "Travis Scott",
	Genre:        cl.GenreCountry,
	DateReleased: cl.NewDate(2024, 12, 6),
	Price:        3.99,
	Stock:        12,
	CreatedAt:    time.Date(2024, 5, 6, 20, 11, 4, 0, time.UTC),
	UpdatedAt:    time.Date(2024, 5, 6, 20, 11, 4, 0, time.UTC),
}

const testAlbumBody = `{
	"name": "ASTROWORLD",
	"artist": "Travis Scott",
	"genre": "Country",
	"dateReleased": "2024-12-06",
	"price": 3.99,
	"stock": 12
}`

// serve runs a single request through the full router.
func serve(store *mock.AlbumStore, method, url string, body io.Reader) *httptest.ResponseRecorder {
	h := Handler{
		AlbumStore: store,
		Logger:     tm.NopLogger,
	}
	h.Handler()
	wr := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, body)
	h.router.ServeHTTP(wr, req)
	return wr
}

// checkResponse decodes the recorded body into a value of the same type as
// expRes and compares the two.
func checkResponse(t *testing.T, wr *httptest.ResponseRecorder, expCode int, expRes interface{}) {
	t.Helper()
	if wr.Code != expCode {
		var res httputils.JSONErrRes
		err := jsonutils.Decode(wr.Body, &res)
		if err != nil {
			t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
		}

		t.Fatalf("unexpected response code returned: %s %s", cmp.Diff(expCode, wr.Code), res.Error.Message)
	}

	var err error
	var res interface{}
	switch expRes.(type) {
	case httputils.JSONErrRes:
		var r httputils.JSONErrRes
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	case cl.ListAlbumsRes:
		var r cl.ListAlbumsRes
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	case cl.GetAlbumRes:
		var r cl.GetAlbumRes
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	case cl.CreateAlbumResponse:
		var r cl.CreateAlbumResponse
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	case cl.UpdateAlbumResponse:
		var r cl.UpdateAlbumResponse
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	case cl.DeleteAlbumResponse:
		var r cl.DeleteAlbumResponse
		err = jsonutils.Decode(wr.Body, &r)
		res = r
	default:
		t.Fatalf("unsupported expected response type %T", expRes)
	}
	if err != nil {
		t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
	}
	if !cmp.Equal(res, expRes) {
		t.Fatalf("unexpected response returned: %s", cmp.Diff(expRes, res))
	}
}

func errRes(msg string) httputils.JSONErrRes {
	return httputils.JSONErrRes{
		Error: httputils.JSONErr{
			Message: msg,
		},
	}
}

func TestListAlbums(t *testing.T) {
	table := []struct {
		label        string
		listAlbumsFn func(ctx context.Context) (cl.ListAlbumsRes, error)
		expCode      int
		expRes       interface{}
	}{
		{
			label: "should fail if listAlbumsFn fails",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{}, errors.New("internal server error")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should pass with an empty catalog",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{Albums: []cl.Album{}}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumsRes{Albums: []cl.Album{}},
		},
		{
			label: "should pass with albums",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{Albums: []cl.Album{testAlbum}}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumsRes{Albums: []cl.Album{testAlbum}},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(&mock.AlbumStore{ListAlbumsFn: ts.listAlbumsFn}, "GET", albumsPath, nil)
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestGetAlbum(t *testing.T) {
	table := []struct {
		label      string
		url        string
		getAlbumFn func(ctx context.Context, id int64) (cl.GetAlbumRes, error)
		expCode    int
		expRes     interface{}
	}{
		{
			label:   "should fail if the album id is not a number",
			url:     albumsPath + "/abc",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseAlbumID] album id must be an integer"),
		},
		{
			label: "should fail if getAlbumFn fails",
			url:   albumsPath + "/1234",
			getAlbumFn: func(ctx context.Context, id int64) (cl.GetAlbumRes, error) {
				return cl.GetAlbumRes{}, errors.New("internal server error")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should fail if getAlbumFn finds no album",
			url:   albumsPath + "/9999",
			getAlbumFn: func(ctx context.Context, id int64) (cl.GetAlbumRes, error) {
				return cl.GetAlbumRes{}, &cl.NotFoundError{ID: id}
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("no album with id: 9999 was found"),
		},
		{
			label: "should pass with a valid id",
			url:   albumsPath + "/13",
			getAlbumFn: func(ctx context.Context, id int64) (cl.GetAlbumRes, error) {
				if id != 13 {
					return cl.GetAlbumRes{}, errors.Errorf("unexpected id %d", id)
				}
				a := testAlbum
				return cl.GetAlbumRes{Album: &a}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.GetAlbumRes{Album: &testAlbum},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(&mock.AlbumStore{GetAlbumFn: ts.getAlbumFn}, "GET", ts.url, nil)
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestCreateAlbum(t *testing.T) {
	table := []struct {
		label         string
		body          string
		createAlbumFn func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if there's an error decoding json",
			body:    `{badjson`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("json: invalid character 'b' looking for beginning of object key string: '{badjson'"),
		},
		{
			label:   "should fail if the body is empty",
			body:    ``,
			expCode: http.StatusBadRequest,
			expRes:  errRes("json: unexpected end of JSON input: ''"),
		},
		{
			label: "should fail if the album attributes are invalid",
			body:  `{"name": "ASTROWORLD"}`,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				return cl.CreateAlbumResponse{}, &cl.InvalidAttributesError{Fields: cl.Validate(r.Album).Invalid()}
			},
			expCode: http.StatusBadRequest,
			expRes:  errRes("the following attributes are invalid: [artist genre dateReleased price]"),
		},
		{
			label: "should fail if createAlbumFn fails",
			body:  testAlbumBody,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				return cl.CreateAlbumResponse{}, errors.New("internal server error")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should pass with all valid fields",
			body:  testAlbumBody,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				exp := testAlbum
				exp.ID = 0
				exp.CreatedAt = time.Time{}
				exp.UpdatedAt = time.Time{}
				if !cmp.Equal(r.Album, exp) {
					return cl.CreateAlbumResponse{}, errors.New(cmp.Diff(exp, r.Album))
				}
				a := testAlbum
				return cl.CreateAlbumResponse{Album: &a}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.CreateAlbumResponse{Album: &testAlbum},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(&mock.AlbumStore{CreateAlbumFn: ts.createAlbumFn}, "POST", albumsPath, strings.NewReader(ts.body))
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestUpdateAlbum(t *testing.T) {
	table := []struct {
		label         string
		url           string
		body          string
		updateAlbumFn func(ctx context.Context, r cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error)
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if the album id is not a number",
			url:     albumsPath + "/abc",
			body:    testAlbumBody,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseAlbumID] album id must be an integer"),
		},
		{
			label:   "should fail on an unknown genre",
			url:     albumsPath + "/13",
			body:    `{"genre": "Polka"}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes(`json: invalid genre: '{"genre": "Polka"}'`),
		},
		{
			label: "should fail if the album does not exist",
			url:   albumsPath + "/404",
			body:  testAlbumBody,
			updateAlbumFn: func(ctx context.Context, r cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {
				return cl.UpdateAlbumResponse{}, &cl.NotFoundError{ID: r.ID}
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("no album with id: 404 was found"),
		},
		{
			label: "should fail if the album attributes are invalid",
			url:   albumsPath + "/13",
			body:  `{"id": -1}`,
			updateAlbumFn: func(ctx context.Context, r cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {
				return cl.UpdateAlbumResponse{}, &cl.InvalidAttributesError{Fields: cl.Validate(r.Album).Invalid()}
			},
			expCode: http.StatusBadRequest,
			expRes:  errRes("the following attributes are invalid: [id name artist genre dateReleased price]"),
		},
		{
			label: "should pass the path id to the store",
			url:   albumsPath + "/13",
			body:  `{"id": 99, "name": "ASTROWORLD", "artist": "Travis Scott", "genre": "Country", "dateReleased": "2024-12-06", "price": 3.99, "stock": 12}`,
			updateAlbumFn: func(ctx context.Context, r cl.UpdateAlbumRequest) (cl.UpdateAlbumResponse, error) {
				if r.ID != 13 || r.Album.ID != 99 {
					return cl.UpdateAlbumResponse{}, errors.Errorf("unexpected ids %d %d", r.ID, r.Album.ID)
				}
				a := testAlbum
				return cl.UpdateAlbumResponse{Album: &a}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.UpdateAlbumResponse{Album: &testAlbum},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(&mock.AlbumStore{UpdateAlbumFn: ts.updateAlbumFn}, "PUT", ts.url, strings.NewReader(ts.body))
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestDeleteAlbum(t *testing.T) {
	table := []struct {
		label         string
		url           string
		deleteAlbumFn func(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error)
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if the album id is not a number",
			url:     albumsPath + "/1.5",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseAlbumID] album id must be an integer"),
		},
		{
			label: "should fail if the album does not exist",
			url:   albumsPath + "/404",
			deleteAlbumFn: func(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error) {
				return cl.DeleteAlbumResponse{}, &cl.NotFoundError{ID: id}
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("no album with id: 404 was found"),
		},
		{
			label: "should return the deleted album",
			url:   albumsPath + "/13",
			deleteAlbumFn: func(ctx context.Context, id int64) (cl.DeleteAlbumResponse, error) {
				a := testAlbum
				return cl.DeleteAlbumResponse{Album: &a}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.DeleteAlbumResponse{Album: &testAlbum},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(&mock.AlbumStore{DeleteAlbumFn: ts.deleteAlbumFn}, "DELETE", ts.url, nil)
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	wr := serve(&mock.AlbumStore{}, "PATCH", albumsPath+"/13", nil)
	checkResponse(t, wr, http.StatusMethodNotAllowed, errRes("http: method not allowed"))
}
