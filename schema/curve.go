package schema

// DataPoint is one digitized coordinate on a survival curve. Ordering by
// Time is meaningful but not guaranteed by construction; consumers sort.
type DataPoint struct {
	Time     float64 `json:"time" bson:"time"`
	Survival float64 `json:"survival" bson:"survival"`
	ID       string  `json:"id,omitempty" bson:"id,omitempty"`
	IsNew    bool    `json:"isNew,omitempty" bson:"is_new,omitempty"`
}

// RiskTableRow is one "number at risk" annotation beneath a KM plot.
// AtRisk at time 0 is the arm's total enrolled population when present.
type RiskTableRow struct {
	Time   float64 `json:"time" bson:"time"`
	AtRisk int     `json:"atRisk" bson:"at_risk"`
	Events int     `json:"events" bson:"events"`
}

// ExtractedCurve is one treatment arm's digitized curve. Points is full
// resolution; ResampledPoints is an optional resampling at the requested
// granularity, kept separate so both resolutions survive.
type ExtractedCurve struct {
	ID              string         `json:"id" bson:"curve_id"`
	Name            string         `json:"name" bson:"name"`
	Color           string         `json:"color" bson:"color"`
	Points          []DataPoint    `json:"points" bson:"points"`
	ResampledPoints []DataPoint    `json:"resampledPoints,omitempty" bson:"resampled_points,omitempty"`
	RiskTable       []RiskTableRow `json:"riskTable,omitempty" bson:"risk_table,omitempty"`
}

type AxisRanges struct {
	XMin float64 `json:"xMin" bson:"x_min"`
	XMax float64 `json:"xMax" bson:"x_max"`
	YMin float64 `json:"yMin" bson:"y_min"`
	YMax float64 `json:"yMax" bson:"y_max"`
}

type ExtractionMetadata struct {
	ArmNames     []string `json:"armNames,omitempty" bson:"arm_names,omitempty"`
	OutcomeType  string   `json:"outcomeType,omitempty" bson:"outcome_type,omitempty"`
	HasRiskTable bool     `json:"hasRiskTable" bson:"has_risk_table"`
	Simulated    bool     `json:"simulated,omitempty" bson:"simulated,omitempty"`
}

// ExtractionResult aggregates all curves digitized from one image pair.
// Points mirrors the first curve for single-curve consumers; Curves keeps
// multi-arm extractions lossless.
type ExtractionResult struct {
	Success    bool                `json:"success"`
	Points     []DataPoint         `json:"points,omitempty"`
	Curves     []ExtractedCurve    `json:"curves,omitempty"`
	RiskTable  []RiskTableRow      `json:"riskTable,omitempty"`
	AxisRanges AxisRanges          `json:"axisRanges"`
	Metadata   *ExtractionMetadata `json:"metadata,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// ValidationResult reports domain-invariant checks on curve data. Warnings
// never affect Valid.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
