// Package consultant is the boundary layer around the frameworks engine: it
// validates requests, obtains a narrative from a generator, runs the right
// analyzer, and assembles the immutable result envelope.
package consultant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmorrow/strategy-consultant/internal/frameworks"
	"github.com/kmorrow/strategy-consultant/internal/narrative"
	"github.com/kmorrow/strategy-consultant/internal/session"
)

// ErrInvalidRequest marks boundary validation failures. Everything past
// validation degrades gracefully inside the engine instead of erroring.
var ErrInvalidRequest = errors.New("invalid request")

type Framework string

const (
	FrameworkSWOT        Framework = "swot"
	FrameworkFiveForces  Framework = "porters-five-forces"
	FrameworkMarketEntry Framework = "market-entry"
	FrameworkCompetitive Framework = "competitive"
)

const (
	DepthQuick         = "quick"
	DepthStandard      = "standard"
	DepthComprehensive = "comprehensive"

	defaultRegion = "Global"
)

// Request identifies the subject of one analysis. Company is required for
// company-scoped frameworks, Industry for market entry.
type Request struct {
	Framework   Framework
	Company     string
	Industry    string
	Region      string
	Competitors []string
	Depth       string
	SessionID   string
}

// AnalysisResult is the envelope returned for every analysis. It is built
// once per request and never retained or mutated afterwards.
type AnalysisResult struct {
	Framework       Framework `json:"framework"`
	Company         string    `json:"company,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	Region          string    `json:"region,omitempty"`
	Analysis        any       `json:"analysis"`
	Recommendations []string  `json:"recommendations"`
	Timestamp       string    `json:"timestamp"`
	SessionID       string    `json:"session_id,omitempty"`
}

// Consultant ties together the narrative generator, the extraction engine,
// and the optional session store.
type Consultant struct {
	engine   *frameworks.Engine
	gen      narrative.Generator
	sessions *session.Store
}

// New builds a Consultant. A nil engine falls back to the default rule
// tables; a nil session store disables session bookkeeping.
func New(engine *frameworks.Engine, gen narrative.Generator, sessions *session.Store) *Consultant {
	if engine == nil {
		engine = frameworks.DefaultEngine()
	}
	return &Consultant{engine: engine, gen: gen, sessions: sessions}
}

// Analyze obtains a narrative from the generator and extracts the structured
// result for the requested framework.
func (c *Consultant) Analyze(ctx context.Context, req Request) (AnalysisResult, error) {
	req, err := normalize(req)
	if err != nil {
		return AnalysisResult{}, err
	}
	text, err := c.gen.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%s analysis: %w", req.Framework, err)
	}
	return c.analyze(req, text)
}

// AnalyzeNarrative extracts the structured result from a narrative the
// caller already has, skipping generation.
func (c *Consultant) AnalyzeNarrative(req Request, text string) (AnalysisResult, error) {
	req, err := normalize(req)
	if err != nil {
		return AnalysisResult{}, err
	}
	return c.analyze(req, text)
}

func (c *Consultant) analyze(req Request, text string) (AnalysisResult, error) {
	var payload any
	switch req.Framework {
	case FrameworkSWOT:
		payload = c.engine.SWOT(text)
	case FrameworkFiveForces:
		payload = c.engine.FiveForces(text)
	case FrameworkMarketEntry:
		payload = c.engine.MarketEntry(req.Industry, req.Region, text)
	case FrameworkCompetitive:
		payload = c.engine.Competitive(req.Company, req.Competitors, text)
	default:
		payload = frameworks.NewRawAnalysis(text)
	}

	result := AnalysisResult{
		Framework:       req.Framework,
		Company:         req.Company,
		Industry:        req.Industry,
		Region:          req.Region,
		Analysis:        payload,
		Recommendations: c.engine.Recommendations(text),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		SessionID:       req.SessionID,
	}
	if c.sessions != nil {
		result.SessionID = c.sessions.Record(req.SessionID, session.Entry{
			Framework: string(req.Framework),
			Subject:   subject(req),
		})
	}
	return result, nil
}

// normalize validates the request and fills framework-appropriate defaults.
func normalize(req Request) (Request, error) {
	if req.Framework == "" {
		return req, fmt.Errorf("%w: framework is required", ErrInvalidRequest)
	}
	switch req.Framework {
	case FrameworkSWOT, FrameworkFiveForces, FrameworkCompetitive:
		if req.Company == "" {
			return req, fmt.Errorf("%w: company is required for %s", ErrInvalidRequest, req.Framework)
		}
	case FrameworkMarketEntry:
		if req.Industry == "" {
			return req, fmt.Errorf("%w: industry is required for %s", ErrInvalidRequest, req.Framework)
		}
		if req.Region == "" {
			req.Region = defaultRegion
		}
	}
	if req.Depth == "" {
		req.Depth = DepthStandard
	}
	return req, nil
}

func subject(req Request) string {
	if req.Company != "" {
		return req.Company
	}
	return req.Industry
}
