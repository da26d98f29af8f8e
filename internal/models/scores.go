package models

// Score thresholds for the color cue in the results panel
const (
	ComplexityThreshold  = 0.5
	ReadabilityThreshold = 0.5
)

// ScoreSource tells where an aggregate score came from
type ScoreSource int

const (
	ScoreNone ScoreSource = iota
	ScoreAggregate
	ScoreMean
)

// Score is an aggregate value. Set is false when nothing could be computed,
// which callers treat as "do not render".
type Score struct {
	Value  float64
	Set    bool
	Source ScoreSource
}

// ScoreSummary holds the two aggregate scores shown in the panel
type ScoreSummary struct {
	Complexity  Score
	Readability Score
}

// Any reports whether at least one score should be displayed
func (s ScoreSummary) Any() bool {
	return s.Complexity.Set || s.Readability.Set
}

// Scores derives the aggregate scores of a result: top-level fields win,
// otherwise the mean of per-function scores is used.
func (r *RefactorResult) Scores() ScoreSummary {
	if r == nil {
		return ScoreSummary{}
	}
	return ScoreSummary{
		Complexity: aggregate(r.ComplexityScore, r.RefactoredFunctions, func(f FunctionInfo) *float64 {
			return f.ComplexityScore
		}),
		Readability: aggregate(r.ReadabilityScore, r.RefactoredFunctions, func(f FunctionInfo) *float64 {
			return f.ReadabilityScore
		}),
	}
}

func aggregate(top *float64, fns []FunctionInfo, pick func(FunctionInfo) *float64) Score {
	if top != nil {
		return Score{Value: *top, Set: true, Source: ScoreAggregate}
	}
	if mean, ok := MeanScore(fns, pick); ok {
		return Score{Value: mean, Set: true, Source: ScoreMean}
	}
	return Score{}
}

// MeanScore averages the picked score over fns, skipping functions without
// one. An empty input yields (0, false).
func MeanScore(fns []FunctionInfo, pick func(FunctionInfo) *float64) (float64, bool) {
	var sum float64
	n := 0
	for _, f := range fns {
		if v := pick(f); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ComplexityOK is true when complexity is low enough to be shown as good
func ComplexityOK(v float64) bool {
	return v <= ComplexityThreshold
}

// ReadabilityOK is true when readability is high enough to be shown as good
func ReadabilityOK(v float64) bool {
	return v >= ReadabilityThreshold
}
