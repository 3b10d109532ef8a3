package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// contentSelectors are high-confidence main-content selectors, scanned in
// order. The scan short-circuits once a match is comfortably large.
var contentSelectors = []string{
	"article",
	"main",
	".content",
	".post-content",
	".article-content",
	".entry-content",
	"#content",
	".main-content",
}

const (
	// selectorShortCircuitLen stops the selector scan early: a semantic
	// match this large is trusted without scanning the remaining selectors.
	selectorShortCircuitLen = 1000

	// selectorFallbackLen triggers density expansion when the best selector
	// match is smaller than this.
	selectorFallbackLen = 500

	// densityMinParagraphLen is the minimum visible text length for a
	// paragraph to seed density expansion.
	densityMinParagraphLen = 100

	// densityAncestorLevels bounds the upward walk from the seed paragraph.
	densityAncestorLevels = 3

	// densityGrowthFactor is the multiplicative hysteresis: an ancestor
	// replaces the current best only if its text is >20% longer. Without it
	// the walk drifts to the document root on every small gain.
	densityGrowthFactor = 1.2
)

// candidate is a proposed main-content root, alive only for the duration of
// one extraction.
type candidate struct {
	node    *html.Node
	source  pagemark.CandidateSource
	textLen int
	scores  pagemark.Scores
	final   float64
}

// collect proposes candidate subtree roots: a selector pass first, density
// expansion when selectors find nothing substantial, and the document body
// as a last-resort low-confidence candidate.
func (e *Engine) collect(doc *goquery.Document) []*candidate {
	w := walker{layout: e.layout}

	candidates, bestLen := e.selectorPass(doc, w)

	if bestLen < selectorFallbackLen {
		if c := e.densityExpand(doc, w); c != nil {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		if body := doc.Find("body").First(); body.Length() > 0 {
			n := body.Nodes[0]
			candidates = append(candidates, &candidate{
				node:    n,
				source:  pagemark.SourceBody,
				textLen: len(w.visibleText(n)),
			})
		}
	}

	return candidates
}

// selectorPass evaluates the content selectors in order, recording each
// match as a candidate. Returns the candidates and the largest visible-text
// length seen.
func (e *Engine) selectorPass(doc *goquery.Document, w walker) ([]*candidate, int) {
	var candidates []*candidate
	seen := make(map[*html.Node]bool)
	bestLen := 0

	for _, selector := range contentSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			n := s.Nodes[0]
			if seen[n] {
				return
			}
			seen[n] = true
			textLen := len(w.visibleText(n))
			if textLen == 0 {
				return
			}
			candidates = append(candidates, &candidate{
				node:    n,
				source:  pagemark.SourceSelector,
				textLen: textLen,
			})
			if textLen > bestLen {
				bestLen = textLen
			}
		})
		if bestLen > selectorShortCircuitLen {
			break
		}
	}

	return candidates, bestLen
}

// densityExpand finds the paragraph with the longest visible text and walks
// up its ancestors, keeping the expansion only while the text grows by more
// than the hysteresis factor.
func (e *Engine) densityExpand(doc *goquery.Document, w walker) *candidate {
	var seed *html.Node
	seedLen := 0

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		n := s.Nodes[0]
		textLen := len(w.visibleText(n))
		if textLen > seedLen {
			seed = n
			seedLen = textLen
		}
	})

	if seed == nil || seedLen < densityMinParagraphLen {
		return nil
	}

	best := seed
	bestLen := seedLen
	ancestor := seed.Parent
	for level := 0; level < densityAncestorLevels && ancestor != nil; level++ {
		if ancestor.Type != html.ElementNode || ancestor.Data == "html" {
			break
		}
		ancestorLen := len(w.visibleText(ancestor))
		if float64(ancestorLen) > float64(bestLen)*densityGrowthFactor {
			best = ancestor
			bestLen = ancestorLen
		}
		ancestor = ancestor.Parent
	}

	return &candidate{
		node:    best,
		source:  pagemark.SourceDensity,
		textLen: bestLen,
	}
}
