package handle

import (
	"net/http"
	"strconv"
)

const maxHistory = 100

func (h *Handle) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "history is not configured"})
		return
	}
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad limit"})
			return
		}
		limit = min(n, maxHistory)
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	rows, err := h.history.Recent(ctx, limit)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "history error: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
