package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
)

func TestDocumentStore(t *testing.T) {
	ctx := context.TODO()

	t.Run("Create once per session", func(t *testing.T) {
		// setup
		sut := newDocumentStore(t)

		// when
		first, err := sut.CreateIfAbsent(ctx, exampleReservation("cs_1", "user-1", mytime.ExampleTime))
		assert.NoError(t, err)
		again := exampleReservation("cs_1", "user-1", mytime.ExampleTime)
		again.VehicleName = "Other"
		second, err := sut.CreateIfAbsent(ctx, again)
		assert.NoError(t, err)

		// then
		assert.True(t, first)
		assert.False(t, second)
		found, exists, err := sut.FindBySessionID(ctx, "cs_1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "AMG GT-R", found.VehicleName)
	})

	t.Run("Concurrent deliveries create one reservation", func(t *testing.T) {
		// setup
		sut := newDocumentStore(t)

		// when
		created := make(chan bool, 10)
		wg := sync.WaitGroup{}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := sut.CreateIfAbsent(ctx, exampleReservation("cs_1", "user-1", mytime.ExampleTime))
				assert.NoError(t, err)
				created <- ok
			}()
		}
		wg.Wait()
		close(created)

		// then
		count := 0
		for ok := range created {
			if ok {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("List by user newest first", func(t *testing.T) {
		// setup
		sut := newDocumentStore(t)

		// given
		_, _ = sut.CreateIfAbsent(ctx, exampleReservation("cs_1", "user-1", mytime.ExampleTime))
		_, _ = sut.CreateIfAbsent(ctx, exampleReservation("cs_2", "user-1", mytime.ExampleTime.Add(time.Hour)))
		_, _ = sut.CreateIfAbsent(ctx, exampleReservation("cs_3", "user-2", mytime.ExampleTime))

		// when
		reservations, err := sut.ListByUser(ctx, "user-1")

		// then
		assert.NoError(t, err)
		assert.Len(t, reservations, 2)
		assert.Equal(t, "cs_2", reservations[0].StripeSessionID)
		assert.Equal(t, "cs_1", reservations[1].StripeSessionID)
	})

	t.Run("Find owned hides other users reservations", func(t *testing.T) {
		// setup
		sut := newDocumentStore(t)

		// given
		_, _ = sut.CreateIfAbsent(ctx, exampleReservation("cs_1", "user-1", mytime.ExampleTime))

		// when
		_, ownExists, err := FindOwned(ctx, sut, "user-1", "cs_1")
		assert.NoError(t, err)
		_, otherExists, err := FindOwned(ctx, sut, "user-2", "cs_1")
		assert.NoError(t, err)

		// then
		assert.True(t, ownExists)
		assert.False(t, otherExists)
	})

	t.Run("Price from amount total", func(t *testing.T) {
		assert.Equal(t, 223800.0, PriceFromAmountTotal(22380000))
		assert.Equal(t, 0.0, PriceFromAmountTotal(0))
	})
}

func newDocumentStore(t *testing.T) *DocumentStore {
	store, _, err := mystore.NewInMemoryStore[Reservation](context.TODO())
	assert.NoError(t, err)
	return NewDocumentStoreWith(store)
}

func exampleReservation(sessionID string, userID string, createdAt time.Time) Reservation {
	return Reservation{
		UserID:          userID,
		VehicleID:       "mercedes-amg-gt-r",
		VehicleName:     "AMG GT-R",
		Price:           223800,
		AmountTotal:     22380000,
		Currency:        "usd",
		StripeSessionID: sessionID,
		Status:          StatusConfirmed,
		CreatedAt:       createdAt,
	}
}
