package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		assert.NotNil(t, name.Get())
	}
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestGet_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontWithSize_RejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("junk", []byte("not a font"), 10))
}
