package httpapi

import "net/http"

func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetAwards")
	defer span.End()

	out, err := h.awardService.Get(ctx)
	if err != nil {
		h.logFailure(ctx, "get awards failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SaveAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SaveAwards")
	defer span.End()

	var req awardsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.awardService.Save(ctx, req.selection())
	if err != nil {
		h.logFailure(ctx, "save awards failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListAwardOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListAwardOptions")
	defer span.End()

	opts, err := h.awardService.Options(ctx)
	if err != nil {
		h.logFailure(ctx, "list award options failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toAwardOptionsDTO(opts))
}

func (h *Handler) ReplaceStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ReplaceStaff")
	defer span.End()

	body, err := readDocument(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.staffService.Replace(ctx, body)
	if err != nil {
		h.logFailure(ctx, "replace staff failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int{
		"members": len(updated),
		"players": len(updated.Players()),
		"admins":  len(updated.Admins()),
	})
}
