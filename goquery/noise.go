package goquery

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Noise signal weights. The total is capped at 1.
const (
	noiseClassWeight    = 0.3
	noiseLeadInWeight   = 0.4
	noiseLinkWeight     = 0.3
	noiseShortWeight    = 0.2
	noiseLinksPer100Max = 0.5
	noiseShortTextLen   = 100
)

// noiseCategories match class/id substrings that mark boilerplate regions.
// Synonyms share a category so one element is not penalized repeatedly for
// the same signal.
var noiseCategories = []struct {
	name string
	re   *regexp.Regexp
}{
	{"recommendation", regexp.MustCompile(`(?i)trending|popular|related|recommended`)},
	{"sidebar", regexp.MustCompile(`(?i)sidebar|aside|widget|\bads?\b|advert`)},
	{"social", regexp.MustCompile(`(?i)social|share|comment|newsletter`)},
	{"navigation", regexp.MustCompile(`(?i)navigation|\bnav\b|menu|breadcrumb`)},
	{"chrome", regexp.MustCompile(`(?i)footer|header|banner|promo`)},
}

// noiseLeadIns are phrases that open boilerplate blocks.
var noiseLeadIns = []string{
	"trending",
	"advertisement",
	"sponsored",
	"subscribe",
	"sign up",
	"follow us",
	"related",
	"recommended",
	"you may also like",
	"you might also like",
	"more from",
	"share this",
}

// NoiseOptions controls the noise classifier.
type NoiseOptions struct {
	// FirstMatchOnly stops category matching at the first hit instead of
	// accumulating all matching categories. Accumulation is the default
	// policy; first-match is the legacy fast path.
	FirstMatchOnly bool
}

// noiseScore estimates, in [0,1], how likely the node is boilerplate rather
// than article content. Signals are additive and the total is capped.
func (e *Engine) noiseScore(n *html.Node, w walker) float64 {
	score := 0.0

	marker := strings.ToLower(attrValue(n, "class") + " " + attrValue(n, "id"))
	if strings.TrimSpace(marker) != "" {
		for _, cat := range noiseCategories {
			if cat.re.MatchString(marker) {
				score += noiseClassWeight
				if e.noise.FirstMatchOnly {
					break
				}
			}
		}
	}

	text := w.visibleText(n)
	lower := strings.ToLower(text)
	for _, phrase := range noiseLeadIns {
		if strings.HasPrefix(lower, phrase) {
			score += noiseLeadInWeight
			break
		}
	}

	if len(text) > 0 {
		links, _ := w.linkStats(n)
		if float64(links)/float64(len(text))*100 > noiseLinksPer100Max {
			score += noiseLinkWeight
		}
	}

	if len(text) < noiseShortTextLen {
		score += noiseShortWeight
	}

	if score > 1 {
		return 1
	}
	return score
}
