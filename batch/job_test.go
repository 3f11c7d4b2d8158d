package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBatchFileAcceptsBothLineForms(t *testing.T) {
	text := `
# a comment line
1 2
3 4 5
# another comment
6, 7
`
	jobs, err := ParseBatchFile(strings.NewReader(text), 10)
	require.NoError(t, err)
	require.Equal(t, []Job{
		{RoundCount: 10, MaskA: 1, MaskB: 2},
		{RoundCount: 3, MaskA: 4, MaskB: 5},
		{RoundCount: 10, MaskA: 6, MaskB: 7},
	}, jobs)
}

func TestParseBatchFileRejectsZeroZeroMask(t *testing.T) {
	_, err := ParseBatchFile(strings.NewReader("0 0\n"), 1)
	require.ErrorIs(t, err, ErrZeroZeroMask)
}

func TestParseBatchFileRejectsMalformedLine(t *testing.T) {
	_, err := ParseBatchFile(strings.NewReader("1 2 3 4\n"), 1)
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseBatchFileEmptyIsError(t *testing.T) {
	_, err := ParseBatchFile(strings.NewReader("# only comments\n\n"), 1)
	require.ErrorIs(t, err, ErrNoJobs)
}

func TestGenerateRNGJobsRequiresSeed(t *testing.T) {
	_, err := GenerateRNGJobs(5, 0, 1)
	require.ErrorIs(t, err, ErrMissingSeed)
}

func TestGenerateRNGJobsIsDeterministicAndNeverZeroZero(t *testing.T) {
	a, err := GenerateRNGJobs(20, 99, 2)
	require.NoError(t, err)
	b, err := GenerateRNGJobs(20, 99, 2)
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, j := range a {
		require.False(t, j.MaskA == 0 && j.MaskB == 0)
		require.Equal(t, 2, j.RoundCount)
	}
}
