package pagemark

// Sub-score weights for the final content score combination.
// They sum to 1.0 so a perfect candidate with zero noise scores exactly 1.
const (
	WeightTextQuality      = 0.25
	WeightContentDensity   = 0.20
	WeightArticleStructure = 0.20
	WeightSemantic         = 0.15
	WeightPosition         = 0.10
	WeightMetadata         = 0.10
)

// NoisePenalty is the multiplicative weight of the noise score in the final
// combination: a fully noisy candidate loses half its weighted score.
const NoisePenalty = 0.5

// Scores holds the independent quality signals computed for a candidate.
// Each sub-score is in [0,1]; values outside the range are clamped before
// combination.
type Scores struct {
	TextQuality      float64 `json:"textQuality"`
	ContentDensity   float64 `json:"contentDensity"`
	ArticleStructure float64 `json:"articleStructure"`
	Semantic         float64 `json:"semanticScore"`
	Position         float64 `json:"positionScore"`
	Metadata         float64 `json:"metadataScore"`
	Noise            float64 `json:"noiseScore"`
}

// Final combines the sub-scores into the final content score:
// the weighted sum of the six quality signals, penalized multiplicatively
// by the noise score. The result is in [0,1] and is monotonically
// non-increasing in Noise.
func (s Scores) Final() float64 {
	sum := WeightTextQuality*clamp01(s.TextQuality) +
		WeightContentDensity*clamp01(s.ContentDensity) +
		WeightArticleStructure*clamp01(s.ArticleStructure) +
		WeightSemantic*clamp01(s.Semantic) +
		WeightPosition*clamp01(s.Position) +
		WeightMetadata*clamp01(s.Metadata)
	return sum * (1 - clamp01(s.Noise)*NoisePenalty)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// CandidateSource identifies which heuristic proposed a candidate.
type CandidateSource string

// Candidate sources, in discovery (and tie-break) order.
const (
	SourceSelector CandidateSource = "selector-match"
	SourceDensity  CandidateSource = "density-expansion"
	SourceBody     CandidateSource = "body-fallback"
)
