package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

type healthRes struct {
	Status string `json:"status"`
}

// Health reports whether the album store can be reached.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	if h.Pinger != nil {
		if err := h.Pinger.Ping(ctx); err != nil {
			h.Logger.Warn("[Health] store unreachable",
				"request_id", requestid.Get(ctx),
				"details", err.Error(),
			)
			_ = httputils.WriteJSONError(w, v, "store unreachable", http.StatusServiceUnavailable)
			return
		}
	}

	_ = httputils.WriteJSONData(w, v, healthRes{Status: "ok"}, http.StatusOK)
}
