package handlers

import (
	"net/http"
)

// Products serves the current inventory snapshot. The read contract never
// fails: a cold or expired cache falls back to the default snapshot.
func (h *Handlers) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	snapshot := h.inventory.Current(ctx)
	writeJSON(w, http.StatusOK, snapshot, logger)
}
