package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kmorrow/strategy-consultant/internal/consultant"
	"github.com/kmorrow/strategy-consultant/internal/frameworks"
	"github.com/kmorrow/strategy-consultant/internal/narrative"
	"github.com/kmorrow/strategy-consultant/internal/session"
)

func main() {
	framework := flag.String("framework", "swot", "Analysis framework (swot, porters-five-forces, market-entry, competitive)")
	company := flag.String("company", "", "Company to analyze")
	industry := flag.String("industry", "", "Target industry (market-entry)")
	region := flag.String("region", "", "Target region (market-entry, defaults to Global)")
	competitors := flag.String("competitors", "", "Comma-separated competitor names (competitive)")
	depth := flag.String("depth", "", "Analysis depth (quick, standard, comprehensive)")
	request := flag.String("request", "", "Free-text request; overrides the structured flags when set")
	input := flag.String("input", "", "Path to a narrative file to analyze instead of generating one")
	rulesPath := flag.String("rules", "", "Path to a YAML rules override file")
	sessionID := flag.String("session", "", "Session ID to append this analysis to")
	mock := flag.Bool("mock", false, "Use the deterministic mock generator instead of the Anthropic API")
	timeout := flag.Duration("timeout", 2*time.Minute, "Generation timeout")
	flag.Parse()

	req := consultant.Request{
		Framework:   consultant.Framework(*framework),
		Company:     *company,
		Industry:    *industry,
		Region:      *region,
		Competitors: splitFlag(*competitors),
		Depth:       *depth,
		SessionID:   *sessionID,
	}
	if *request != "" {
		parsed, ok := consultant.ParseTask(*request)
		if !ok {
			log.Fatalf("could not identify an analysis task in %q", *request)
		}
		parsed.SessionID = *sessionID
		req = parsed
	}

	engine := frameworks.DefaultEngine()
	if *rulesPath != "" {
		rules, err := frameworks.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal(err)
		}
		engine = frameworks.NewEngine(rules)
	}

	var gen narrative.Generator
	if *mock {
		gen = narrative.MockGenerator{}
	} else {
		var err error
		gen, err = narrative.NewAnthropicGeneratorFromEnv()
		if err != nil {
			log.Fatal(err)
		}
	}

	c := consultant.New(engine, gen, session.NewStore(session.DefaultTTL))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	var result consultant.AnalysisResult
	var err error
	if *input != "" {
		data, readErr := os.ReadFile(*input)
		if readErr != nil {
			log.Fatal(readErr)
		}
		result, err = c.AnalyzeNarrative(req, string(data))
	} else {
		result, err = c.Analyze(ctx, req)
	}
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func splitFlag(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}
