package testutils

import (
	_ "embed"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed fantasyprosdata/draftwizard.html
var draftWizardPage []byte

// DraftWizardPath is where the fake server serves the auction values page.
const DraftWizardPath = "/editor/createFromProjections.jsp"

type FakeFantasyProsServer struct {
	s *httptest.Server
}

func NewFakeFantasyProsServer() *FakeFantasyProsServer {
	r := chi.NewRouter()
	r.Get(DraftWizardPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(draftWizardPage)
	})

	return &FakeFantasyProsServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFantasyProsServer) Close() {
	f.s.Close()
}

// URL is the full url of the draft wizard page.
func (f *FakeFantasyProsServer) URL() string {
	return f.s.URL + DraftWizardPath
}

// BaseURL is the root of the fake server, any other path returns a 404.
func (f *FakeFantasyProsServer) BaseURL() string {
	return f.s.URL
}
