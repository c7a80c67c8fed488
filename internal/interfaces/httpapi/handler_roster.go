package httpapi

import "net/http"

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeamPlayers")
	defer span.End()

	items, err := h.rosterService.Players(ctx, r.PathValue("team"))
	if err != nil {
		h.logFailure(ctx, "list team players failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toPlayerOptionDTOs(items))
}

func (h *Handler) ListRosterWarnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListRosterWarnings")
	defer span.End()

	warnings, err := h.matchService.Warnings(ctx)
	if err != nil {
		h.logFailure(ctx, "list roster warnings failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toWarningDTOs(warnings))
}

func (h *Handler) ReplaceRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ReplaceRoster")
	defer span.End()

	body, err := readDocument(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.rosterService.Replace(ctx, body)
	if err != nil {
		h.logFailure(ctx, "replace roster failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"teams": updated.Teams()})
}
