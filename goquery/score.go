package goquery

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagemark/pagemark"
)

// scoreCandidate computes all sub-scores for a candidate and its final
// combined score. Each sub-score is clamped to [0,1] by Scores.Final.
func (e *Engine) scoreCandidate(c *candidate, cfg pagemark.Config, hasArticleLD bool) {
	w := walker{layout: e.layout}
	sub := goquery.NewDocumentFromNode(c.node)
	text := w.visibleText(c.node)

	c.textLen = len(text)
	c.scores.TextQuality = textQuality(text, c.node, w)
	c.scores.ContentDensity = contentDensity(c.node, w, text)
	c.scores.ArticleStructure = articleStructure(c.node, w, sub)
	if cfg.DisableSemanticAnalysis {
		c.scores.Semantic = 0.5
	} else {
		c.scores.Semantic = semanticScore(c.node, hasArticleLD)
	}
	c.scores.Position = e.positionScore(c.node)
	c.scores.Metadata = metadataScore(sub, text)
	c.scores.Noise = e.noiseScore(c.node, w)
	c.final = c.scores.Final()
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// textQuality scores prose quality: sentence-length distribution, paragraph
// shape, capitalization, and lexical diversity.
func textQuality(text string, n *html.Node, w walker) float64 {
	if text == "" {
		return 0
	}

	sentences := splitSentences(text)

	// Sentence length peaks at 15-25 words and degrades gracefully to the
	// 10-35 band; anything outside reads like fragments or run-ons.
	sentenceScore := 0.0
	capitalized := 0
	for _, s := range sentences {
		words := len(strings.Fields(s))
		switch {
		case words >= 15 && words <= 25:
			sentenceScore += 1.0
		case words >= 10 && words <= 35:
			sentenceScore += 0.7
		default:
			sentenceScore += 0.3
		}
		if r := firstLetter(s); unicode.IsUpper(r) {
			capitalized++
		}
	}
	capScore := 0.0
	if len(sentences) > 0 {
		sentenceScore /= float64(len(sentences))
		capScore = float64(capitalized) / float64(len(sentences))
	}

	// Paragraph shape: enough paragraphs of plausible length.
	var paraLens []int
	w.walk(n, func(el *html.Node) bool {
		if el.Data == "p" {
			if l := len(w.visibleText(el)); l >= 40 {
				paraLens = append(paraLens, l)
			}
		}
		return true
	})
	paraScore := minf(float64(len(paraLens))/5.0, 1) * 0.6
	if len(paraLens) > 0 {
		total := 0
		for _, l := range paraLens {
			total += l
		}
		avg := float64(total) / float64(len(paraLens))
		if avg >= 80 && avg <= 600 {
			paraScore += 0.4
		} else {
			paraScore += 0.15
		}
	}

	// Lexical diversity: boilerplate repeats itself, prose does not.
	words := strings.Fields(strings.ToLower(text))
	diversity := 0.0
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, word := range words {
			unique[word] = true
		}
		diversity = minf(float64(len(unique))/float64(len(words))/0.5, 1)
	}

	return 0.35*sentenceScore + 0.25*paraScore + 0.2*capScore + 0.2*diversity
}

// contentDensity scores how much of the subtree is actual text: markup
// ratio, text per element, link density, and the share of text living in
// paragraphs.
func contentDensity(n *html.Node, w walker, text string) float64 {
	if text == "" {
		return 0
	}

	var buf bytes.Buffer
	markupLen := 0
	if err := html.Render(&buf, n); err == nil {
		markupLen = buf.Len()
	}
	markupScore := 0.0
	if markupLen > 0 {
		markupScore = minf(float64(len(text))/float64(markupLen)/0.25, 1)
	}

	elements := w.countElements(n, nil)
	perElement := minf(float64(len(text))/float64(elements+1)/40.0, 1)

	// Link density above 0.2 reads as navigation, not prose.
	_, linkTextLen := w.linkStats(n)
	linkDensity := float64(linkTextLen) / float64(len(text))
	linkScore := 1.0
	if linkDensity > 0.2 {
		linkScore = maxf(0, 1-(linkDensity-0.2)*2)
	}

	paraChars := 0
	w.walk(n, func(el *html.Node) bool {
		if el.Data == "p" {
			paraChars += len(w.visibleText(el))
		}
		return true
	})
	paraScore := minf(float64(paraChars)/float64(len(text))/0.6, 1)

	return 0.3*markupScore + 0.2*perElement + 0.3*linkScore + 0.2*paraScore
}

// articleStructure scores the presence of article furniture: headline,
// subheadings, byline, date, enough body paragraphs, a sane heading
// hierarchy, media, and intro/conclusion paragraphs.
func articleStructure(n *html.Node, w walker, sub *goquery.Document) float64 {
	score := 0.0

	var headingLevels []int
	subheadings := 0
	media := false
	var paragraphs []int
	w.walk(n, func(el *html.Node) bool {
		switch el.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			headingLevels = append(headingLevels, int(el.Data[1]-'0'))
			if el.Data != "h1" {
				subheadings++
			}
		case "img", "figure", "blockquote", "ul", "ol":
			media = true
		case "p":
			paragraphs = append(paragraphs, len(w.visibleText(el)))
		}
		return true
	})

	if len(headingLevels) > 0 {
		score += 0.15
	}
	if subheadings > 0 {
		score += 0.1
	}
	if sub.Find(`[class*="byline"], [class*="author"], [rel="author"]`).Length() > 0 {
		score += 0.1
	}
	if sub.Find(`time, [class*="date"], [class*="publish"]`).Length() > 0 {
		score += 0.1
	}

	body := 0
	for _, l := range paragraphs {
		if l >= 50 {
			body++
		}
	}
	if body >= 3 {
		score += 0.2
	}
	if ValidHeadingHierarchy(headingLevels) {
		score += 0.1
	}
	if media {
		score += 0.1
	}
	if len(paragraphs) > 0 && paragraphs[0] >= 100 {
		score += 0.075
	}
	if len(paragraphs) > 1 && paragraphs[len(paragraphs)-1] >= 80 {
		score += 0.075
	}

	return score
}

// ValidHeadingHierarchy reports whether no heading level exceeds its
// immediately preceding heading's level by more than one (no h2 jumping
// straight to h4).
func ValidHeadingHierarchy(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1]+1 {
			return false
		}
	}
	return true
}

var contentMarkerRe = regexp.MustCompile(`(?i)content|article|post|story|entry|main|body|text`)

// semanticScore rewards explicit semantic markup: HTML5 sectioning tags,
// ARIA roles, schema.org article types, and content-indicating class names.
func semanticScore(n *html.Node, hasArticleLD bool) float64 {
	score := 0.0

	switch n.Data {
	case "main":
		score += 0.4
	case "article":
		score += 0.35
	case "section":
		score += 0.2
	}

	switch attrValue(n, "role") {
	case "main", "article", "document":
		score += 0.2
	}

	if strings.Contains(attrValue(n, "itemtype"), "Article") || hasArticleLD {
		score += 0.25
	}

	if contentMarkerRe.MatchString(attrValue(n, "class") + " " + attrValue(n, "id")) {
		score += 0.15
	}

	if score > 1 {
		return 1
	}
	return score
}

// positionScore scores the candidate's rendered geometry against a typical
// main-column layout. Without layout information the score is neutral.
func (e *Engine) positionScore(n *html.Node) float64 {
	if e.layout == nil {
		return 0.5
	}
	box, ok := e.layout.Bounds(n)
	if !ok {
		return 0.5
	}
	vw, vh := e.layout.Viewport()
	if vw <= 0 || vh <= 0 {
		return 0.5
	}

	center := box.Left + box.Width/2
	offset := absf(center-vw/2) / vw
	centerScore := maxf(0, 1-offset*2)

	widthRatio := box.Width / vw
	widthScore := 0.2
	switch {
	case widthRatio >= 0.4 && widthRatio <= 0.8:
		widthScore = 1.0
	case widthRatio >= 0.3 && widthRatio <= 0.9:
		widthScore = 0.6
	}

	columnScore := 0.0
	if box.Left < 0.7*vw && box.Width > 0.4*vw {
		columnScore = 1.0
	}

	heightScore := 0.4
	if box.Height >= 0.5*vh && box.Height <= 20*vh {
		heightScore = 1.0
	}

	return 0.3*centerScore + 0.3*widthScore + 0.2*columnScore + 0.2*heightScore
}

// metadataItems is the checklist of article metadata markers.
var metadataItems = []string{
	`[class*="author"], [rel="author"]`,
	`a[rel="author"], a[class*="author"]`,
	`time[datetime], [class*="publish"]`,
	`[class*="updated"], [class*="modified"]`,
	`[class*="tag"]`,
	`[class*="categor"]`,
	`[class*="share"]`,
	`[class*="comment"]`,
	`img`,
	`figcaption, [class*="caption"]`,
	`video, iframe`,
	`[class*="read-time"], [class*="reading-time"]`,
}

// metadataScore measures how much of the metadata checklist is present,
// with a bonus for the author+date+images combination that marks a
// well-formed article page.
func metadataScore(sub *goquery.Document, text string) float64 {
	hits := 0
	for _, selector := range metadataItems {
		if sub.Find(selector).Length() > 0 {
			hits++
		}
	}
	// Word count rounds out the checklist.
	if len(strings.Fields(text)) > 300 {
		hits++
	}
	score := float64(hits) / float64(len(metadataItems)+1)

	hasAuthor := sub.Find(`[class*="author"], [rel="author"]`).Length() > 0
	hasDate := sub.Find(`time[datetime], [class*="publish"]`).Length() > 0
	hasImages := sub.Find(`img`).Length() > 0
	if hasAuthor && hasDate && hasImages {
		score += 0.2
	}

	if score > 1 {
		return 1
	}
	return score
}

func splitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	sentences := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
