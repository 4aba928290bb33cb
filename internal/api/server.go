package api

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/linkdata/deadlock"

	"github.com/youruser/lettercat/internal/catalogue"
	imagepkg "github.com/youruser/lettercat/internal/image"
	"github.com/youruser/lettercat/internal/selection"
)

// Server holds what the HTTP handlers share.
type Server struct {
	Images        []catalogue.Image
	Selections    *selection.Store
	Pipeline      *imagepkg.Pipeline
	PreviewHeight int
	ExportHeight  int
	Logger        *slog.Logger

	rngMu deadlock.Mutex // protects rng
	rng   *rand.Rand
}

func NewServer(images []catalogue.Image, p *imagepkg.Pipeline, previewHeight, exportHeight int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Images:        images,
		Selections:    selection.NewStore(),
		Pipeline:      p,
		PreviewHeight: previewHeight,
		ExportHeight:  exportHeight,
		Logger:        logger,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes text-to-image choices reproducible.
func (s *Server) Seed(seed int64) {
	s.rngMu.Lock()
	s.rng = rand.New(rand.NewSource(seed))
	s.rngMu.Unlock()
}

func (s *Server) fromText(text string) ([]catalogue.Image, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return catalogue.FromText(s.Images, text, s.rng)
}
