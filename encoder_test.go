package soundex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderStrategies(t *testing.T) {
	encoders := []Encoder{Soundex{}, Caverphone{}}

	for _, enc := range encoders {
		// Degenerate input is a defined case for every strategy.
		assert.Empty(t, enc.Encode(""))
		assert.Empty(t, enc.EncodeFull(""))
		assert.Empty(t, enc.Encode("!#%&"))
	}
}

func TestSoundexEncoderDelegates(t *testing.T) {
	var enc Soundex
	for _, w := range words {
		require.Equal(t, Encode(w), enc.Encode(w))
		require.Equal(t, EncodeFull(w), enc.EncodeFull(w))
	}
}
