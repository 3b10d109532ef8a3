package pagemark

// Mode is a named preset controlling score and noise thresholds.
type Mode string

// Extraction modes. Strict demands high-confidence candidates, comprehensive
// accepts almost anything, balanced sits in between and is the default.
const (
	ModeStrict        Mode = "strict"
	ModeBalanced      Mode = "balanced"
	ModeComprehensive Mode = "comprehensive"
)

// Validate returns an error if the mode is not a known preset.
// The empty mode is valid and treated as balanced.
func (m Mode) Validate() error {
	switch m {
	case "", ModeStrict, ModeBalanced, ModeComprehensive:
		return nil
	}
	return Errorf(EINVALID, "unknown mode %q", string(m))
}

// MinContentScore returns the minimum final score a winning candidate must
// reach before the pipeline falls back to degraded extraction.
func (m Mode) MinContentScore() float64 {
	switch m {
	case ModeStrict:
		return 0.8
	case ModeComprehensive:
		return 0.4
	default:
		return 0.6
	}
}

// NoiseThreshold returns the noise score above which candidates are dropped
// outright when noise filtering is enabled.
func (m Mode) NoiseThreshold() float64 {
	switch m {
	case ModeStrict:
		return 0.3
	case ModeComprehensive:
		return 0.7
	default:
		return 0.5
	}
}

// Config controls a single extraction. The zero value is usable: balanced
// mode with all analysis stages enabled and the default filter keywords.
type Config struct {
	// Mode selects the threshold preset. Empty means balanced.
	Mode Mode

	// DisableSemanticAnalysis skips the semantic sub-score (HTML5/ARIA/
	// structured-data signals contribute a neutral value instead).
	DisableSemanticAnalysis bool

	// DisableNoiseFiltering keeps noisy candidates in the ranking instead of
	// dropping those above the mode's noise threshold. The multiplicative
	// noise penalty still applies.
	DisableNoiseFiltering bool

	// DisableBoundaryDetection skips the boilerplate post-filter on the
	// rendered text.
	DisableBoundaryDetection bool

	// MinContentScore overrides the mode's minimum score when > 0.
	MinContentScore float64

	// NoiseThreshold overrides the mode's noise threshold when > 0.
	NoiseThreshold float64

	// FilterKeywords is a newline-delimited boilerplate keyword list.
	// Lines starting with '#' are comments. Blank input means the built-in
	// default set.
	FilterKeywords string

	// SourceURL is recorded in the extraction context header.
	SourceURL string

	// Selection is an optional user text selection active at extraction
	// time; it is truncated to MaxSelectionLen in the context.
	Selection string
}

// MinScore resolves the effective minimum content score.
func (c Config) MinScore() float64 {
	if c.MinContentScore > 0 {
		return c.MinContentScore
	}
	return c.Mode.MinContentScore()
}

// NoiseLimit resolves the effective noise threshold.
func (c Config) NoiseLimit() float64 {
	if c.NoiseThreshold > 0 {
		return c.NoiseThreshold
	}
	return c.Mode.NoiseThreshold()
}

// Keywords resolves the active boilerplate keyword list.
func (c Config) Keywords() []string {
	return ParseFilterKeywords(c.FilterKeywords)
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if err := c.Mode.Validate(); err != nil {
		return err
	}
	if c.MinContentScore < 0 || c.MinContentScore > 1 {
		return Errorf(EINVALID, "min content score must be in [0,1], got %g", c.MinContentScore)
	}
	if c.NoiseThreshold < 0 || c.NoiseThreshold > 1 {
		return Errorf(EINVALID, "noise threshold must be in [0,1], got %g", c.NoiseThreshold)
	}
	return nil
}
