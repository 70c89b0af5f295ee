package http

import (
	"encoding/base64"
	"net/http"

	"github.com/MKhiriev/go-merge-relay/internal/app"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/internal/utils"
	"github.com/MKhiriev/go-merge-relay/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteHTML(w, []byte(app.MsgHello), http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, app.MsgNotFound, http.StatusNotFound)
}

// sub answers with the base64 of the merged sub-path documents.
func (h *Handler) sub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	merged, err := h.services.RelayService.Relay(ctx, models.RouteSub)
	if err != nil {
		log.Err(err).Str("route", models.RouteSub.String()).Msg("relay failed")
		http.Error(w, app.MsgUnableToMergeFiles, statusFromError(err))
		return
	}

	utils.WriteHTML(w, []byte(base64.StdEncoding.EncodeToString(merged)), http.StatusOK)
}

func (h *Handler) up(w http.ResponseWriter, r *http.Request) {
	h.relayText(w, r, models.RouteUp)
}

func (h *Handler) re(w http.ResponseWriter, r *http.Request) {
	h.relayText(w, r, models.RouteRe)
}

// relayText answers with the merged documents of route wrapped in the JSON
// envelope.
func (h *Handler) relayText(w http.ResponseWriter, r *http.Request, route models.Route) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	text, err := h.services.RelayService.RelayText(ctx, route)

	resp := models.NewContentResponse(http.StatusOK, text)
	if err != nil {
		status := statusFromError(err)
		message := app.MsgUnableToRequest(route.String())
		if status == http.StatusBadRequest {
			message = app.MsgContentNotText
		}
		resp = models.NewErrorResponse(status, message)
	}

	if resp.IsError() {
		log.Err(err).Str("route", route.String()).Int("status", resp.Status).Msg("relay failed")
	}

	if _, err = utils.WriteJSON(w, resp, resp.Status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
