package search

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/arxlab/neoalz/cipher"
)

func TestAutoGenerateRemainingRoundLBShape(t *testing.T) {
	desc := cipher.NeoAlzette()
	base := DefaultConfiguration(0)
	base.MaxAddCandidates = 3
	base.MaxSubCandidates = 3

	table, budgeted := AutoGenerateRemainingRoundLB(desc, 0x12345678, 0x9abcdef0, 2, base)
	require.Len(t, table, 3)
	require.Equal(t, 0, table[0])
	require.False(t, budgeted)
}

func TestAutoGenerateRemainingRoundLBReportsBudgeted(t *testing.T) {
	desc := cipher.NeoAlzette()
	base := DefaultConfiguration(0)
	base.MaxNodes = 10

	_, budgeted := AutoGenerateRemainingRoundLB(desc, 1, 0, 1, base)
	require.True(t, budgeted)
}

func TestResolveRemainingRoundLBDropsBudgetedTableUnderStrictPolicy(t *testing.T) {
	cfg := Configuration{StrictLowerBound: true}
	candidate := []int{0, 3, 7}
	resolved := ResolveRemainingRoundLB(cfg, candidate, true)
	require.Equal(t, []int{0, 0, 0}, resolved)

	resolved2 := ResolveRemainingRoundLB(cfg, candidate, false)
	require.Equal(t, candidate, resolved2)
}

func TestResolveRemainingRoundLBIgnoresBudgetedWithoutStrictPolicy(t *testing.T) {
	cfg := Configuration{StrictLowerBound: false}
	candidate := []int{0, 3, 7}
	resolved := ResolveRemainingRoundLB(cfg, candidate, true)
	require.Equal(t, candidate, resolved)
}
