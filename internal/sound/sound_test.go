//go:build !ci

package sound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_Length(t *testing.T) {
	t.Parallel()

	buf, err := synthesize([]tone{{440, 50}, {880, 25}})
	require.NoError(t, err)
	want := sampleRate.N(50*time.Millisecond) + sampleRate.N(25*time.Millisecond)
	assert.Equal(t, want, buf.Len())
}

func TestSynthesize_RejectsBadFrequency(t *testing.T) {
	t.Parallel()

	// above the Nyquist limit
	_, err := synthesize([]tone{{float64(sampleRate), 10}})
	assert.Error(t, err)
}
