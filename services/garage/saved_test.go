package garage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavedVehicles(t *testing.T) {
	t.Run("Zero value is empty", func(t *testing.T) {
		saved := SavedVehicles{}
		assert.Equal(t, 0, saved.Len())
		assert.False(t, saved.Contains("mclaren-720s"))
		assert.Equal(t, []string{}, saved.IDs())
	})

	t.Run("Duplicates are ignored", func(t *testing.T) {
		saved := NewSavedVehicles("mclaren-720s", "mercedes-amg-gt-r", "mclaren-720s")
		assert.Equal(t, []string{"mclaren-720s", "mercedes-amg-gt-r"}, saved.IDs())
		assert.False(t, saved.Add("mercedes-amg-gt-r"))
		assert.False(t, saved.Add(""))
	})

	t.Run("Toggle twice restores", func(t *testing.T) {
		saved := NewSavedVehicles("mclaren-720s")

		assert.True(t, saved.Toggle("mercedes-amg-gt-r"))
		assert.Equal(t, []string{"mclaren-720s", "mercedes-amg-gt-r"}, saved.IDs())

		assert.False(t, saved.Toggle("mercedes-amg-gt-r"))
		assert.Equal(t, []string{"mclaren-720s"}, saved.IDs())
	})

	t.Run("Remove unknown", func(t *testing.T) {
		saved := NewSavedVehicles("mclaren-720s")
		assert.False(t, saved.Remove("mercedes-amg-gt-r"))
		assert.Equal(t, 1, saved.Len())
	})

	t.Run("IDs returns a copy", func(t *testing.T) {
		saved := NewSavedVehicles("mclaren-720s")
		ids := saved.IDs()
		ids[0] = "changed"
		assert.True(t, saved.Contains("mclaren-720s"))
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(NewSavedVehicles("mclaren-720s", "mercedes-amg-gt-r"))
		assert.NoError(t, err)
		assert.JSONEq(t, `["mclaren-720s","mercedes-amg-gt-r"]`, string(data))

		decoded := SavedVehicles{}
		err = json.Unmarshal([]byte(`["a","b","a"]`), &decoded)
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, decoded.IDs())
	})
}
