package codeverifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifier(t *testing.T) {
	t.Run("Known challenge", func(t *testing.T) {
		v := NewVerifierFrom("05796efe18af079dc654bb88c68f5cd8b8a5d378e7cec8e9856258f95d3b0b5a")

		method, challenge, err := v.CreateChallenge()

		assert.NoError(t, err)
		assert.Equal(t, "S256", method)
		assert.Equal(t, "A-Y4cHhqIJi48r-V_cKdDRzlMJmC8zk_hlBBvOEE-A0", challenge)
	})

	t.Run("Random verifiers differ", func(t *testing.T) {
		v1, err := NewVerifier()
		assert.NoError(t, err)
		v2, err := NewVerifier()
		assert.NoError(t, err)

		assert.Len(t, v1.Value, 64)
		assert.NotEqual(t, v1.Value, v2.Value)
	})
}
