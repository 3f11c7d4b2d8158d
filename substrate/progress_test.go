package substrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressPrefixGuardSetsAndRestores(t *testing.T) {
	const worker = 987654 // unlikely to collide with other tests' worker IDs
	require.Equal(t, "", ProgressPrefix(worker))

	g := NewProgressPrefixGuard(worker, "[Batch][Deep][job#1] ")
	require.Equal(t, "[Batch][Deep][job#1] ", ProgressPrefix(worker))

	g.Close()
	require.Equal(t, "", ProgressPrefix(worker))
}

func TestProgressPrefixGuardNestsAndRestoresPrevious(t *testing.T) {
	const worker = 987655
	outer := NewProgressPrefixGuard(worker, "[outer] ")
	inner := NewProgressPrefixGuard(worker, "[inner] ")
	require.Equal(t, "[inner] ", ProgressPrefix(worker))

	inner.Close()
	require.Equal(t, "[outer] ", ProgressPrefix(worker))

	outer.Close()
	require.Equal(t, "", ProgressPrefix(worker))
}
