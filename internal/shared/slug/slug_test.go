package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "classic-white-tee", FromName("Classic White Tee"))
	assert.Equal(t, "remera-ni-o", FromName("  Remera Niño!  "))
	assert.Equal(t, "buzo-oversize-2", FromName("Buzo Oversize (2)"))
	assert.Equal(t, "item", FromName("???"))
	assert.Equal(t, "item", FromName(""))
}

func TestFromName_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 40)
	s := FromName(long)
	assert.LessOrEqual(t, len(s), 80)
	assert.False(t, strings.HasSuffix(s, "-"))
}
