package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/faceforward/internal/client/client"
	"github.com/dmitrijs2005/faceforward/internal/client/intake"
	"github.com/dmitrijs2005/faceforward/internal/client/models"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

// AnalysisService holds one selected photo and at most one analysis of it.
type AnalysisService interface {
	// Select resolves args to candidates and normalizes the first acceptable
	// one. On success it replaces the selection and drops the previous result;
	// on failure the previous selection stays.
	Select(ctx context.Context, args []string) (*intake.Image, error)
	// Analyze uploads the selected photo and replaces the current result.
	Analyze(ctx context.Context) (*models.Prediction, error)
	Current() State
}

// Resolver turns CLI arguments into intake candidates.
type Resolver interface {
	Resolve(ctx context.Context, args []string) ([]intake.Candidate, error)
}

// Processor normalizes candidates into an uploadable image.
type Processor interface {
	Process(ctx context.Context, candidates []intake.Candidate) (*intake.Image, error)
}

// State is a snapshot of the analysis flow.
type State struct {
	Image  *intake.Image
	Result *models.Prediction
	// Error is the message of the last failed Select or Analyze; it is reset
	// by the next successful one.
	Error string
}

type analysisService struct {
	client    client.Client
	resolver  Resolver
	processor Processor
	log       logging.Logger

	mu    sync.Mutex
	state State
}

func NewAnalysisService(c client.Client, resolver Resolver, processor Processor, log logging.Logger) AnalysisService {
	return &analysisService{client: c, resolver: resolver, processor: processor, log: log}
}

func (s *analysisService) Select(ctx context.Context, args []string) (*intake.Image, error) {
	candidates, err := s.resolver.Resolve(ctx, args)
	if err != nil {
		return nil, s.fail(err)
	}

	img, err := s.processor.Process(ctx, candidates)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.state = State{Image: img}
	s.mu.Unlock()
	return img, nil
}

func (s *analysisService) Analyze(ctx context.Context) (*models.Prediction, error) {
	s.mu.Lock()
	img := s.state.Image
	s.mu.Unlock()

	if img == nil {
		return nil, s.fail(ErrNoImage)
	}

	res := s.client.Upload(ctx, img)
	if !res.Success {
		return nil, s.fail(&RequestError{Op: "upload", Message: res.Message})
	}

	var resp models.AnalysisResponse
	if err := res.Decode(&resp); err != nil {
		return nil, s.fail(fmt.Errorf("analysis: %w", err))
	}
	p := resp.Result()
	if p == nil {
		msg := resp.Message
		if msg == "" {
			msg = client.AnalysisFailedMessage
		}
		return nil, s.fail(&RequestError{Op: "upload", Message: msg})
	}

	s.mu.Lock()
	s.state.Result = p
	s.state.Error = ""
	s.mu.Unlock()

	s.log.Info(ctx, "analysis received", "image", img.Name, "features", len(p.FaceFeatures), "recommendations", len(p.Recommendations))
	return p, nil
}

func (s *analysisService) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *analysisService) fail(err error) error {
	s.mu.Lock()
	s.state.Error = Message(err)
	s.mu.Unlock()
	return err
}
