package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

//go:embed sleeperdata
var sleeperdata embed.FS

const (
	// SleeperLeagueID is the current season league served by the fake server.
	SleeperLeagueID = "1001"
	// SleeperPreviousLeagueID is last season's league, it only has drafts.
	SleeperPreviousLeagueID = "1000"
	// SleeperBrokenLeagueID serves users and rosters but fails for week 5 matchups.
	SleeperBrokenLeagueID = "1002"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueFileHandler("users"))
			r.Get("/rosters", leagueFileHandler("rosters"))
			r.Get("/drafts", leagueFileHandler("drafts"))
			r.Get("/matchups/{week}", matchupsHandler)
		})

		r.Get("/draft/{draftID}/picks", draftPicksHandler)
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if !hasFile(fmt.Sprintf("league_%s.json", leagueID)) {
		// sleeper answers unknown leagues with a 200 and a "null" body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
		return
	}
	serveFile(w, fmt.Sprintf("league_%s.json", leagueID))
}

func leagueFileHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		if leagueID == SleeperBrokenLeagueID {
			leagueID = SleeperLeagueID
		}

		name := fmt.Sprintf("%s_%s.json", kind, leagueID)
		if !hasFile(name) {
			// known leagues have empty lists, unknown ones get sleeper's null
			w.WriteHeader(http.StatusOK)
			if hasFile(fmt.Sprintf("league_%s.json", leagueID)) {
				w.Write([]byte("[]"))
			} else {
				w.Write([]byte("null"))
			}
			return
		}
		serveFile(w, name)
	}
}

func matchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	if leagueID == SleeperBrokenLeagueID {
		if week == "5" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		leagueID = SleeperLeagueID
	}

	name := fmt.Sprintf("matchups_%s_%s.json", leagueID, week)
	if !hasFile(name) {
		// weeks that have not been played yet have no matchups
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, name)
}

func draftPicksHandler(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")
	name := fmt.Sprintf("picks_%s.json", draftID)
	if !hasFile(name) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, name)
}

func hasFile(name string) bool {
	_, err := sleeperdata.Open(fmt.Sprintf("sleeperdata/%s", name))
	return err == nil
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
