package remarks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	pool := Default()
	require.Len(t, pool, 9)
	assert.Equal(t, "🧠 Nice try, genius!", pool[0])
	for _, r := range pool {
		assert.False(t, strings.HasPrefix(r, "#"))
		assert.NotEmpty(t, r)
	}

	pool[0] = "mutated"
	assert.NotEqual(t, "mutated", Default()[0])
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	pool, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), pool)
}

func TestLoad_File(t *testing.T) {
	var lines []string
	lines = append(lines, "# header", "")
	for i := 0; i < MinPool; i++ {
		lines = append(lines, "  remark "+string(rune('a'+i))+"  ")
	}
	path := filepath.Join(t.TempDir(), "remarks.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	pool, err := Load(path)
	require.NoError(t, err)
	require.Len(t, pool, MinPool)
	assert.Equal(t, "remark a", pool[0])
}

func TestLoad_TooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "few.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrPoolTooSmall)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
