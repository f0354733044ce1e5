package mystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type vehicleHold struct {
	UID       string
	Owner     string
	VehicleID string
	Rank      int
}

var (
	hold = vehicleHold{UID: "123", Owner: "u1", VehicleID: "porsche-911-gt3-rs", Rank: 2}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[vehicleHold](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, hold.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, hold.UID, hold)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, hold.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, hold, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []vehicleHold{hold}, all)
	})
}

func TestTransaction(t *testing.T) {
	c := context.TODO()

	t.Run("Commit", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[vehicleHold](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			return ps.Put(c, hold.UID, hold)
		})
		assert.NoError(t, err)

		_, found, _ := ps.Get(c, hold.UID)
		assert.True(t, found)
	})

	t.Run("Rollback", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[vehicleHold](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			err := ps.Put(c, hold.UID, hold)
			if err != nil {
				return err
			}
			return fmt.Errorf("abort")
		})
		assert.EqualError(t, err, "abort")

		_, found, _ := ps.Get(c, hold.UID)
		assert.False(t, found)
	})

	t.Run("Other store inside transaction", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[vehicleHold](c)
		other, _, _ := NewInMemoryStore[vehicleHold](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			return other.Put(c, hold.UID, hold)
		})
		assert.NoError(t, err)

		all, _ := other.List(c)
		assert.Len(t, all, 1)
	})
}

func TestQuery(t *testing.T) {
	c := context.TODO()
	ps, _, _ := NewInMemoryStore[vehicleHold](c)
	_ = ps.Put(c, "1", vehicleHold{UID: "1", Owner: "u1", VehicleID: "a", Rank: 3})
	_ = ps.Put(c, "2", vehicleHold{UID: "2", Owner: "u2", VehicleID: "b", Rank: 1})
	_ = ps.Put(c, "3", vehicleHold{UID: "3", Owner: "u1", VehicleID: "c", Rank: 1})

	t.Run("Equality filter with ascending order", func(t *testing.T) {
		result, err := ps.Query(c, []Filter{{Field: "Owner", Compare: "=", Value: "u1"}}, "Rank")
		assert.NoError(t, err)
		assert.Equal(t, []string{"3", "1"}, uids(result))
	})

	t.Run("Descending order", func(t *testing.T) {
		result, err := ps.Query(c, nil, "-Rank")
		assert.NoError(t, err)
		assert.Equal(t, "1", result[0].UID)
	})

	t.Run("No match", func(t *testing.T) {
		result, err := ps.Query(c, []Filter{{Field: "Owner", Compare: "=", Value: "u9"}}, "")
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Unknown field", func(t *testing.T) {
		_, err := ps.Query(c, []Filter{{Field: "Color", Compare: "=", Value: "red"}}, "")
		assert.Error(t, err)
	})

	t.Run("Unsupported comparison", func(t *testing.T) {
		_, err := ps.Query(c, []Filter{{Field: "Rank", Compare: ">", Value: 1}}, "")
		assert.Error(t, err)
	})
}

func uids(holds []vehicleHold) []string {
	result := []string{}
	for _, h := range holds {
		result = append(result, h.UID)
	}
	return result
}
