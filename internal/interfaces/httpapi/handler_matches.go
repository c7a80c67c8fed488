package httpapi

import (
	"net/http"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	items, err := h.matchService.List(ctx, r.URL.Query().Get("group"))
	if err != nil {
		h.logFailure(ctx, "list matches failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toMatchDTOs(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetMatch")
	defer span.End()

	item, err := h.matchService.Get(ctx, r.PathValue("code"))
	if err != nil {
		h.logFailure(ctx, "get match failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, toMatchDTO(item))
}

func (h *Handler) ListOfficials(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListOfficials")
	defer span.End()

	officials, err := h.matchService.Officials(ctx)
	if err != nil {
		h.logFailure(ctx, "list officials failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, officialsDTO{
		Referees:     officials.Referees,
		Commentators: officials.Commentators,
	})
}

func (h *Handler) ApplyMatchEdits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ApplyMatchEdits")
	defer span.End()

	var req editRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.matchService.ApplyEdits(ctx, r.PathValue("code"), req.ops())
	if err != nil {
		h.logFailure(ctx, "apply match edits failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, editResultDTO{
		Match:    toMatchDTO(res.Match),
		Applied:  res.Applied,
		Revision: res.Revision,
	})
}

func (h *Handler) ExportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ExportMatches")
	defer span.End()

	text, err := h.matchService.Export(ctx)
	if err != nil {
		h.logFailure(ctx, "export matches failed", err)
		writeError(ctx, w, err)
		return
	}
	writeCSV(w, "matches.csv", text)
}

func (h *Handler) ImportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ImportMatches")
	defer span.End()

	body, err := readDocument(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.matchService.Import(ctx, string(body))
	if err != nil {
		h.logFailure(ctx, "import matches failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		Revision: res.Revision,
		Warnings: toWarningDTOs(res.Warnings),
	})
}
