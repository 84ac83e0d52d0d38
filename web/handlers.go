package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dereckquock/keepers/config"
	"github.com/dereckquock/keepers/controller"
	"github.com/dereckquock/keepers/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

const (
	unavailableMessage = "Sleeper data is temporarily unavailable, please try again in a few minutes."
	notFoundMessage    = "Sleeper has no league with that id, check the league id and try again."
)

func rootHandler(leagues []config.League, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"leagues": leagues,
		}
		render.HTML(w, http.StatusOK, "home", data)
	}
}

func leagueLookupHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := strings.TrimSpace(r.URL.Query().Get("current"))
		previous := strings.TrimSpace(r.URL.Query().Get("previous"))
		if current == "" {
			render.HTML(w, http.StatusBadRequest, "400", "a league id is required")
			return
		}
		if previous == "" {
			previous = config.NoPreviousLeague
		}

		http.Redirect(w, r, leaguePath(url.PathEscape(previous), url.PathEscape(current)), http.StatusSeeOther)
	}
}

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previous, current := leagueIDs(r)

		summary, err := ctrl.SeasonSummary(r.Context(), current)
		if err != nil {
			renderError(w, r, render, err)
			return
		}

		data := leagueData(previous, current)
		data["summary"] = summary
		render.HTML(w, http.StatusOK, "league", data)
	}
}

func keepersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previous, current := leagueIDs(r)
		if previous == config.NoPreviousLeague {
			render.HTML(w, http.StatusBadRequest, "400", "keeper costs need last season's league id")
			return
		}

		teams, err := ctrl.KeeperCosts(r.Context(), previous, current)
		if err != nil {
			renderError(w, r, render, err)
			return
		}

		data := leagueData(previous, current)
		data["teams"] = teams
		render.HTML(w, http.StatusOK, "keepers", data)
	}
}

func pointsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previous, current := leagueIDs(r)

		var week int
		var err error
		if q := r.URL.Query().Get("week"); q != "" {
			week, err = strconv.Atoi(q)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("'%s' is not a week number", q))
				return
			}
		} else {
			week, err = ctrl.CurrentWeek(r.Context(), current)
			if err != nil {
				renderError(w, r, render, err)
				return
			}
		}

		report, err := ctrl.RosterPoints(r.Context(), current, week)
		if err != nil {
			renderError(w, r, render, err)
			return
		}

		weeks := make([]int, model.RegularSeasonWeeks)
		for i := range weeks {
			weeks[i] = i + 1
		}

		data := leagueData(previous, current)
		data["report"] = report
		data["weeks"] = weeks
		render.HTML(w, http.StatusOK, "points", data)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var err error
		var results []model.Player
		if query != "" {
			results, err = ctrl.SearchPlayers(r.Context(), query)
			if err != nil {
				renderError(w, r, render, err)
				return
			}
		}

		data := map[string]any{
			"q":       query,
			"results": results,
		}
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func leagueIDs(r *http.Request) (previous, current string) {
	return chi.URLParam(r, "previousLeagueID"), chi.URLParam(r, "currentLeagueID")
}

func leagueData(previous, current string) map[string]any {
	return map[string]any{
		"previousLeagueID": previous,
		"currentLeagueID":  current,
		"hasPrevious":      previous != config.NoPreviousLeague,
	}
}

// errorStatus maps controller errors to a status code and a message that is
// safe to show. Upstream payloads and internal errors are only logged.
func errorStatus(r *http.Request, err error) (int, string) {
	entry := log.WithError(err).WithFields(log.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"path":       r.URL.Path,
	})

	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrNotFound):
		entry.Info("league not found")
		return http.StatusNotFound, notFoundMessage
	case errors.Is(err, model.ErrUnavailable):
		entry.Warn("upstream data unavailable")
		return http.StatusBadGateway, unavailableMessage
	default:
		entry.Error("request failed")
		return http.StatusInternalServerError, "Something went wrong."
	}
}

func renderError(w http.ResponseWriter, r *http.Request, render *render.Render, err error) {
	status, msg := errorStatus(r, err)
	render.HTML(w, status, strconv.Itoa(status), msg)
}
