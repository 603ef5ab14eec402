package frameworks

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// SectionRule maps one section name to the heading keywords that open it.
// Rule order is significant: the first rule whose keyword matches wins.
type SectionRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type IntensityRules struct {
	High []string `yaml:"high"`
	Low  []string `yaml:"low"`
}

type StrategyRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

type MarketKeywords struct {
	Trends        []string `yaml:"trends"`
	Segments      []string `yaml:"segments"`
	Barriers      []string `yaml:"barriers"`
	Opportunities []string `yaml:"opportunities"`
	Risks         []string `yaml:"risks"`
}

type CompetitiveKeywords struct {
	Positive        []string `yaml:"positive"`
	Negative        []string `yaml:"negative"`
	Differentiation []string `yaml:"differentiation"`
	Moves           []string `yaml:"moves"`
}

type Lengths struct {
	SWOTMin    int `yaml:"swot_min"`
	GeneralMin int `yaml:"general_min"`
	LongMin    int `yaml:"long_min"`
}

type Caps struct {
	SWOTPoints       int `yaml:"swot_points"`
	ForceFactors     int `yaml:"force_factors"`
	MarketLines      int `yaml:"market_lines"`
	CompetitorPoints int `yaml:"competitor_points"`
	Recommendations  int `yaml:"recommendations"`
}

// Rules holds every keyword table and threshold the analyzers consult.
// The embedded rules.yaml supplies defaults; LoadRules merges an override file.
type Rules struct {
	SWOTSections          []SectionRule       `yaml:"swot_sections"`
	ForceSections         []SectionRule       `yaml:"force_sections"`
	Intensity             IntensityRules      `yaml:"intensity"`
	Strategies            []StrategyRule      `yaml:"strategies"`
	StrategyFallback      string              `yaml:"strategy_fallback"`
	ForceFactors          map[string][]string `yaml:"force_factors"`
	Market                MarketKeywords      `yaml:"market_keywords"`
	Competitive           CompetitiveKeywords `yaml:"competitive_keywords"`
	RecommendationSignals []string            `yaml:"recommendation_signals"`
	Lengths               Lengths             `yaml:"lengths"`
	Caps                  Caps                `yaml:"caps"`
}

// DefaultRules parses the embedded rule tables. The embed is part of the
// build, so a parse failure here is a programming error.
func DefaultRules() Rules {
	r, err := parseRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("frameworks: embedded rules.yaml: %v", err))
	}
	return r
}

// LoadRules reads an override YAML file on top of the embedded defaults.
// Fields absent from the file keep their default values.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}
	return r, nil
}

func parseRules(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, err
	}
	if len(r.SWOTSections) == 0 || len(r.ForceSections) == 0 {
		return Rules{}, fmt.Errorf("section rules missing")
	}
	if r.Caps.Recommendations <= 0 || r.Caps.ForceFactors <= 0 {
		return Rules{}, fmt.Errorf("caps must be positive")
	}
	return r, nil
}
