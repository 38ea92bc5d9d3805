package referral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelieplus/atelie-api/internal/domain/referral"
)

func TestLevelFor_Limiares(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, referral.LevelBronze},
		{199, referral.LevelBronze},
		{200, referral.LevelPrata},
		{499, referral.LevelPrata},
		{500, referral.LevelOuro},
		{999, referral.LevelOuro},
		{1000, referral.LevelDiamante},
		{5000, referral.LevelDiamante},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, referral.LevelFor(c.points), "pontos: %d", c.points)
	}
}

func TestNextThreshold(t *testing.T) {
	min, level := referral.NextThreshold(0)
	assert.Equal(t, 200, min)
	assert.Equal(t, referral.LevelPrata, level)

	min, level = referral.NextThreshold(750)
	assert.Equal(t, 1000, min)
	assert.Equal(t, referral.LevelDiamante, level)

	min, level = referral.NextThreshold(1000)
	assert.Zero(t, min)
	assert.Empty(t, level)
}
