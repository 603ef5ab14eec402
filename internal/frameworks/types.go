package frameworks

// IntensityLevel is the coarse three-valued classification of a force's
// strength. Moderate is the default when no keyword signal is found.
type IntensityLevel string

const (
	IntensityLow      IntensityLevel = "low"
	IntensityModerate IntensityLevel = "moderate"
	IntensityHigh     IntensityLevel = "high"
)

// Fallback literals. Callers may rely on these exact strings; every other
// field can legitimately be empty.
const (
	FallbackDataNotSpecified = "Data not specified"
	FallbackNotSpecified     = "Not specified"
	FallbackRecommendation   = "Further analysis recommended"
)

type SWOTAnalysis struct {
	Strengths             []string `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	Opportunities         []string `json:"opportunities"`
	Threats               []string `json:"threats"`
	KeyInsights           []string `json:"key_insights"`
	StrategicImplications string   `json:"strategic_implications"`
}

// Force is one of Porter's five forces: a classified intensity, the factors
// driving it, and a templated one-line assessment.
type Force struct {
	Intensity  IntensityLevel `json:"intensity"`
	Factors    []string       `json:"factors"`
	Assessment string         `json:"assessment"`
}

type FiveForces struct {
	Rivalry                  Force    `json:"competitive_rivalry"`
	SupplierPower            Force    `json:"supplier_power"`
	BuyerPower               Force    `json:"buyer_power"`
	Substitutes              Force    `json:"threat_of_substitutes"`
	NewEntrants              Force    `json:"threat_of_new_entrants"`
	OverallAttractiveness    string   `json:"overall_attractiveness"`
	StrategicRecommendations []string `json:"strategic_recommendations"`
}

type MarketAnalysis struct {
	Industry            string   `json:"industry"`
	Region              string   `json:"region"`
	MarketSize          string   `json:"market_size"`
	GrowthRate          string   `json:"growth_rate"`
	KeyTrends           []string `json:"key_trends"`
	CustomerSegments    []string `json:"customer_segments"`
	EntryBarriers       []string `json:"entry_barriers"`
	Opportunities       []string `json:"opportunities"`
	Risks               []string `json:"risks"`
	RecommendedStrategy string   `json:"recommended_strategy"`
}

// CompetitorProfile describes a single company as seen through the narrative:
// the main company and each competitor get one each.
type CompetitorProfile struct {
	Name        string   `json:"name"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Strategy    string   `json:"strategy"`
	MarketShare string   `json:"market_share"`
}

type CompetitiveAnalysis struct {
	Company                      CompetitorProfile   `json:"company"`
	Competitors                  []CompetitorProfile `json:"competitors"`
	CompetitiveDynamics          string              `json:"competitive_dynamics"`
	DifferentiationOpportunities []string            `json:"differentiation_opportunities"`
	StrategicMoves               []string            `json:"strategic_moves"`
	Recommendations              []string            `json:"recommendations"`
}

// RawAnalysis is the tagged fallback payload for frameworks the engine does
// not model. Kind is always "raw" so callers can match on it exhaustively.
type RawAnalysis struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func NewRawAnalysis(text string) RawAnalysis {
	return RawAnalysis{Kind: "raw", Text: text}
}

// Engine bundles the rule tables with the analyzers. Every method is a pure
// function of its inputs; an Engine is safe for concurrent use.
type Engine struct {
	rules Rules
}

func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

func DefaultEngine() *Engine {
	return NewEngine(DefaultRules())
}
