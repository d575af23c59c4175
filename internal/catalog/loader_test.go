package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`
groups:
  - name: Dairy
    max_daily: 2
    items:
      - id: d1
        name: Milk
        portion: 1 cup
        calories: 70
        protein: 7
  - name: Greens
    max_daily: unlimited
    items:
      - id: g1
        name: Lettuce
        calories: 8
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	dairyCap, _ := c.Cap("Dairy")
	n, ok := dairyCap.Limit()
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	greensCap, _ := c.Cap("Greens")
	assert.True(t, greensCap.IsUnlimited())

	milk, ok := c.Food("d1")
	require.True(t, ok)
	assert.Equal(t, 70, milk.Calories)
	assert.Equal(t, "Dairy", milk.Group)
}

func TestLoadJSONLegacyUnlimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := []byte(`{"groups":[{"name":"Libre","max_daily":"Ilimitado","items":[{"id":"x","name":"Apio","calories":10}]}]}`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	capLibre, _ := c.Cap("Libre")
	assert.True(t, capLibre.IsUnlimited())
}

func TestLoadRejectsBadCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte("groups:\n  - name: Dairy\n    max_daily: -1\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteJSONDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteJSON(&buf))

	c, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Groups(), c.Groups())
}
