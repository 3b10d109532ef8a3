package pagemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
)

func TestMode_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     pagemark.Mode
		minScore float64
		noiseTh  float64
	}{
		{pagemark.ModeStrict, 0.8, 0.3},
		{pagemark.ModeBalanced, 0.6, 0.5},
		{pagemark.ModeComprehensive, 0.4, 0.7},
		{pagemark.Mode(""), 0.6, 0.5}, // empty mode behaves as balanced
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.minScore, tt.mode.MinContentScore())
			assert.Equal(t, tt.noiseTh, tt.mode.NoiseThreshold())
		})
	}
}

func TestConfig_Resolution(t *testing.T) {
	t.Parallel()

	t.Run("zero value resolves to balanced defaults", func(t *testing.T) {
		t.Parallel()
		var cfg pagemark.Config
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 0.6, cfg.MinScore())
		assert.Equal(t, 0.5, cfg.NoiseLimit())
		assert.Equal(t, pagemark.DefaultFilterKeywords(), cfg.Keywords())
	})

	t.Run("explicit thresholds override the mode", func(t *testing.T) {
		t.Parallel()
		cfg := pagemark.Config{
			Mode:            pagemark.ModeStrict,
			MinContentScore: 0.55,
			NoiseThreshold:  0.9,
		}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 0.55, cfg.MinScore())
		assert.Equal(t, 0.9, cfg.NoiseLimit())
	})

	t.Run("custom filter keywords replace the defaults", func(t *testing.T) {
		t.Parallel()
		cfg := pagemark.Config{FilterKeywords: "sponsored\n# a comment\nads by"}
		assert.Equal(t, []string{"sponsored", "ads by"}, cfg.Keywords())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()
		cfg := pagemark.Config{Mode: "aggressive"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})

	t.Run("rejects out of range thresholds", func(t *testing.T) {
		t.Parallel()
		err := pagemark.Config{MinContentScore: 1.5}.Validate()
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))

		err = pagemark.Config{NoiseThreshold: -0.1}.Validate()
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
