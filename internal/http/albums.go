package http

import (
	"net/http"
	"net/url"
	cl "record-shop/pkg/catelog"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

// ListAlbums get the list of all the albums
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.AlbumStore.ListAlbums(ctx)
	if err != nil {
		h.writeStoreError(w, r, v, "[ListAlbums] error getting albums list", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// GetAlbum get the details of the album matching the id in the path
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseGetAlbumRequest(r)
	if err != nil {
		h.Logger.Error("[GetAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.GetAlbum(ctx, req.AlbumID)
	if err != nil {
		h.writeStoreError(w, r, v, "[GetAlbum] error getting album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// CreateAlbum adds the album in the request body to the catalog
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseCreateAlbumRequest(r)
	if err != nil {
		h.Logger.Error("[CreateAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.CreateAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, r, v, "[CreateAlbum] error creating album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// UpdateAlbum replaces the album matching the id in the path with the album
// in the request body
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseUpdateAlbumRequest(r)
	if err != nil {
		h.Logger.Error("[UpdateAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.UpdateAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, r, v, "[UpdateAlbum] error updating album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// DeleteAlbum removes the album matching the id in the path and returns it
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, err := parseAlbumID(r)
	if err != nil {
		h.Logger.Error("[DeleteAlbum] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.DeleteAlbum(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, v, "[DeleteAlbum] error deleting album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// writeStoreError logs err and writes it with the status matching its kind.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, v url.Values, msg string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, cl.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, cl.ErrInvalidAttributes):
		code = http.StatusBadRequest
	}

	h.Logger.Error(msg,
		"request_id", requestid.Get(r.Context()),
		"code", code,
		"details", err.Error(),
	)
	_ = httputils.WriteJSONError(w, v, err.Error(), code)
}

func parseAlbumID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("[parseAlbumID] album id must be an integer")
	}
	return id, nil
}

func parseGetAlbumRequest(r *http.Request) (cl.GetAlbumReq, error) {
	id, err := parseAlbumID(r)
	if err != nil {
		return cl.GetAlbumReq{}, err
	}
	return cl.GetAlbumReq{AlbumID: id}, nil
}

func parseCreateAlbumRequest(r *http.Request) (cl.CreateAlbumRequest, error) {
	var req cl.CreateAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req.Album); err != nil {
		return req, err
	}
	return req, nil
}

func parseUpdateAlbumRequest(r *http.Request) (cl.UpdateAlbumRequest, error) {
	var req cl.UpdateAlbumRequest
	id, err := parseAlbumID(r)
	if err != nil {
		return req, err
	}
	if err := httputils.ReadJSON(r.Body, &req.Album); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
