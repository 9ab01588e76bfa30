package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "rox", Name())
	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())
}
