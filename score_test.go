package pagemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemark/pagemark"
)

func TestScores_Final(t *testing.T) {
	t.Parallel()

	t.Run("perfect candidate with zero noise scores one", func(t *testing.T) {
		t.Parallel()
		s := pagemark.Scores{
			TextQuality:      1,
			ContentDensity:   1,
			ArticleStructure: 1,
			Semantic:         1,
			Position:         1,
			Metadata:         1,
		}
		assert.InDelta(t, 1.0, s.Final(), 1e-9)
	})

	t.Run("full noise halves the weighted sum", func(t *testing.T) {
		t.Parallel()
		s := pagemark.Scores{
			TextQuality:      1,
			ContentDensity:   1,
			ArticleStructure: 1,
			Semantic:         1,
			Position:         1,
			Metadata:         1,
			Noise:            1,
		}
		assert.InDelta(t, 0.5, s.Final(), 1e-9)
	})

	t.Run("sub-scores outside the unit interval are clamped", func(t *testing.T) {
		t.Parallel()
		s := pagemark.Scores{
			TextQuality:      2.5,
			ContentDensity:   -1,
			ArticleStructure: 1,
			Semantic:         1,
			Position:         1,
			Metadata:         1,
			Noise:            -0.5,
		}
		// TextQuality clamps to 1, ContentDensity to 0, Noise to 0.
		want := pagemark.WeightTextQuality +
			pagemark.WeightArticleStructure +
			pagemark.WeightSemantic +
			pagemark.WeightPosition +
			pagemark.WeightMetadata
		assert.InDelta(t, want, s.Final(), 1e-9)
	})

	t.Run("final score never increases as noise grows", func(t *testing.T) {
		t.Parallel()
		s := pagemark.Scores{
			TextQuality:      0.8,
			ContentDensity:   0.7,
			ArticleStructure: 0.6,
			Semantic:         0.5,
			Position:         0.5,
			Metadata:         0.4,
		}
		prev := s.Final()
		for noise := 0.0; noise <= 1.0; noise += 0.05 {
			s.Noise = noise
			got := s.Final()
			assert.LessOrEqual(t, got, prev, "noise %.2f", noise)
			prev = got
		}
	})

	t.Run("weights sum to one", func(t *testing.T) {
		t.Parallel()
		sum := pagemark.WeightTextQuality +
			pagemark.WeightContentDensity +
			pagemark.WeightArticleStructure +
			pagemark.WeightSemantic +
			pagemark.WeightPosition +
			pagemark.WeightMetadata
		assert.InDelta(t, 1.0, sum, 1e-9)
	})
}
