package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/groups/{group}/standings", handler.GetGroupStandings)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{code}", handler.GetMatch)
	mux.HandleFunc("GET /v1/officials", handler.ListOfficials)
	mux.HandleFunc("GET /v1/teams/{team}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/roster/warnings", handler.ListRosterWarnings)
	mux.HandleFunc("GET /v1/awards", handler.GetAwards)
	mux.HandleFunc("GET /v1/awards/options", handler.ListAwardOptions)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminCode string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminCode(adminCode, h)
	}

	mux.Handle("POST /v1/admin/matches/{code}/edits", admin(handler.ApplyMatchEdits))
	mux.Handle("GET /v1/admin/matches/export", admin(handler.ExportMatches))
	mux.Handle("PUT /v1/admin/matches", admin(handler.ImportMatches))
	mux.Handle("PUT /v1/admin/roster", admin(handler.ReplaceRoster))
	mux.Handle("PUT /v1/admin/staff", admin(handler.ReplaceStaff))
	mux.Handle("PUT /v1/admin/awards", admin(handler.SaveAwards))
}
