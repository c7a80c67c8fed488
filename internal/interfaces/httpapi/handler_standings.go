package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListStandings")
	defer span.End()

	tables, err := h.standingsService.All(ctx)
	if err != nil {
		h.logFailure(ctx, "list standings failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupTableDTO, 0, len(tables))
	for _, table := range tables {
		out = append(out, toGroupTableDTO(table))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetGroupStandings")
	defer span.End()

	table, err := h.standingsService.Group(ctx, r.PathValue("group"))
	if err != nil {
		h.logFailure(ctx, "get group standings failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toGroupTableDTO(table))
}
