package server

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNickname(t *testing.T) {
	t.Parallel()

	for range 50 {
		name := GenerateNickname()
		parts := strings.Split(name, " ")
		require.Len(t, parts, 2, name)
		assert.True(t, slices.Contains(adjectives, parts[0]), name)
		assert.True(t, slices.Contains(nouns, parts[1]), name)
		assert.LessOrEqual(t, len([]rune(name)), 20)
	}
}
