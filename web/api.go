package web

import (
	"net/http"
	"strconv"

	"github.com/dereckquock/keepers/controller"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func seasonAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := ctrl.SeasonSummary(r.Context(), chi.URLParam(r, "leagueID"))
		if err != nil {
			renderJSONError(w, r, render, err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func pointsAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "week must be a number"})
			return
		}

		report, err := ctrl.RosterPoints(r.Context(), chi.URLParam(r, "leagueID"), week)
		if err != nil {
			renderJSONError(w, r, render, err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func keepersAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.KeeperCosts(r.Context(), chi.URLParam(r, "leagueID"), chi.URLParam(r, "currentLeagueID"))
		if err != nil {
			renderJSONError(w, r, render, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func marketValuesAPIHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := ctrl.MarketValues(r.Context())
		if err != nil {
			renderJSONError(w, r, render, err)
			return
		}
		render.JSON(w, http.StatusOK, values)
	}
}

func renderJSONError(w http.ResponseWriter, r *http.Request, render *render.Render, err error) {
	status, msg := errorStatus(r, err)
	render.JSON(w, status, map[string]string{"error": msg})
}
