package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, got)
	require.Empty(t, Map([]int(nil), strconv.Itoa))
}
