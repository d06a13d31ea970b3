package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

const albumsPath = "/api/recordshop"

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)
	r.Methods("GET").Path("/health").Name("health").HandlerFunc(h.Health)
	if lh := h.Logger.Handler(); lh != nil {
		r.Methods("GET", "PUT").Path("/loglevel").Name("log_level").Handler(lh)
	}

	r.Methods("GET").Path(albumsPath).Name("list_albums").HandlerFunc(h.ListAlbums)
	r.Methods("POST").Path(albumsPath).Name("create_album").HandlerFunc(h.CreateAlbum)
	r.Methods("GET").Path(albumsPath + "/{id}").Name("get_album").HandlerFunc(h.GetAlbum)
	r.Methods("PUT").Path(albumsPath + "/{id}").Name("update_album").HandlerFunc(h.UpdateAlbum)
	r.Methods("DELETE").Path(albumsPath + "/{id}").Name("delete_album").HandlerFunc(h.DeleteAlbum)
	h.router = r
	return r
}
