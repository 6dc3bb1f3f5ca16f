package entity

// Point is a polygon vertex in image pixel space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// BoundingBox is a recognized region; the pipeline passes it through untouched.
type BoundingBox struct {
	Text       string  `json:"text" yaml:"text"`
	Polygon    []Point `json:"polygon" yaml:"polygon"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ConfidenceState distinguishes "the provider has no score" from "the page failed".
// Both are excluded from the document mean.
type ConfidenceState int

const (
	ConfidenceNotProvided ConfidenceState = iota
	ConfidenceProvided
	ConfidenceFailed
)

func (s ConfidenceState) String() string {
	switch s {
	case ConfidenceProvided:
		return "provided"
	case ConfidenceFailed:
		return "failed"
	default:
		return "not_provided"
	}
}

// Confidence is a per-page score in [0,1] when State is ConfidenceProvided.
type Confidence struct {
	State ConfidenceState
	Value float64
}

// ProvidedConfidence clamps v into [0,1].
func ProvidedConfidence(v float64) Confidence {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return Confidence{State: ConfidenceProvided, Value: v}
}

// Present reports whether the value participates in averaging.
func (c Confidence) Present() bool { return c.State == ConfidenceProvided }

// ProviderRole tells which link of the chain produced a page outcome.
type ProviderRole string

const (
	ProviderNone     ProviderRole = "none"
	ProviderPrimary  ProviderRole = "primary"
	ProviderFallback ProviderRole = "fallback"
)

// PageOCROutcome is the result for exactly one page, keyed by PageIndex.
type PageOCROutcome struct {
	PageIndex  int
	Text       string
	Boxes      []BoundingBox
	Confidence Confidence
	Provider   ProviderRole
	Err        error
}

// Failed reports whether the page produced no usable text.
func (o PageOCROutcome) Failed() bool { return o.Err != nil }
