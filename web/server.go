package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dereckquock/keepers/config"
	"github.com/dereckquock/keepers/controller"
	"github.com/dereckquock/keepers/model"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C, leagues []config.League) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, leagues)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Infof("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points":     pointsFormatter,
				"dollars":    dollarsFormatter,
				"costSource": costSourceFormatter,
				"leaguePath": leaguePath,
			},
		},
	})
}

func pointsFormatter(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func dollarsFormatter(n int) string {
	return fmt.Sprintf("$%d", n)
}

func costSourceFormatter(s model.CostSource) string {
	switch s {
	case model.CostFromDraft:
		return "Draft price"
	case model.CostFromMarket:
		return "Market value"
	default:
		return "Minimum"
	}
}

func leaguePath(previousLeagueID, currentLeagueID string) string {
	return config.League{Current: currentLeagueID, Previous: previousLeagueID}.Path()
}
