package mypublisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/autosphere/storefront/lib/myevents"
	"github.com/autosphere/storefront/lib/mypubsub"
	"github.com/autosphere/storefront/lib/myqueue"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
)

type vehicleSaved struct {
	UserUID   string
	VehicleID string
}

func (e vehicleSaved) GetEventTypeName() string { return "garage.vehicle.saved" }
func (e vehicleSaved) GetAggregateName() string { return e.UserUID }

func TestTransactionalPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := context.TODO()
	event := vehicleSaved{UserUID: "u1", VehicleID: "porsche-911-gt3-rs"}

	t.Run("Publish stores in outbox and queues a trigger", func(t *testing.T) {
		// setup
		_, outbox, queue, _, sut := setup(t, ctrl)

		// when
		err := sut.Publish(c, "garage", event)

		// then
		assert.NoError(t, err)
		envelopes, _ := outbox.List(c)
		assert.Len(t, envelopes, 1)
		assert.False(t, envelopes[0].Published)
		assert.Equal(t, "garage.garage.vehicle.saved.u1", envelopes[0].String())
		assert.Equal(t, mytime.ExampleTime, envelopes[0].CreatedAt)
		assert.Len(t, queue.Tasks, 1)
		assert.Equal(t, "/pubsub/garage/"+envelopes[0].UID, queue.Tasks[0].WebhookURLPath)
	})

	t.Run("Publishing the same event twice is idempotent", func(t *testing.T) {
		// setup
		_, outbox, queue, _, sut := setup(t, ctrl)

		// when
		err := sut.Publish(c, "garage", event)
		assert.NoError(t, err)
		err = sut.Publish(c, "garage", event)
		assert.NoError(t, err)

		// then
		envelopes, _ := outbox.List(c)
		assert.Len(t, envelopes, 1)
		assert.Len(t, queue.Tasks, 1)
	})

	t.Run("Trigger publishes pending events", func(t *testing.T) {
		// setup
		router, outbox, queue, pubsub, sut := setup(t, ctrl)

		// given
		err := sut.Publish(c, "garage", event)
		assert.NoError(t, err)

		// when
		request, _ := http.NewRequest(http.MethodPut, queue.Tasks[0].WebhookURLPath, nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		published := pubsub.Published("garage")
		assert.Len(t, published, 1)
		assert.Contains(t, published[0], `garage.vehicle.saved`)
		envelopes, _ := outbox.List(c)
		assert.True(t, envelopes[0].Published)
	})

	t.Run("Trigger fails when pubsub is down", func(t *testing.T) {
		// setup
		outbox, _, _ := mystore.NewInMemoryStore[myevents.EventEnvelope](c)
		queue := myqueue.NewFakeTaskQueue()
		nower := mytime.NewMockNower(ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
		pubsub := mypubsub.NewMockPubSub(ctrl)
		sut := NewWithOutbox(outbox, pubsub, queue, nower)
		router := mux.NewRouter()
		_ = sut.RegisterEndpoints(c, router)

		// given
		err := sut.Publish(c, "garage", event)
		assert.NoError(t, err)
		pubsub.EXPECT().Publish(gomock.Any(), "garage", gomock.Any()).Return(assert.AnError)

		// when
		request, _ := http.NewRequest(http.MethodPut, queue.Tasks[0].WebhookURLPath, nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusInternalServerError, response.Code)
		envelopes, _ := outbox.List(c)
		assert.False(t, envelopes[0].Published)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *mystore.InMemoryStore[myevents.EventEnvelope], *myqueue.FakeTaskQueue, *mypubsub.FakePubSub, *TransactionalPublisher) {
	c := context.TODO()

	outbox, _, _ := mystore.NewInMemoryStore[myevents.EventEnvelope](c)
	queue := myqueue.NewFakeTaskQueue()
	pubsub := mypubsub.NewFakePubSub()
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	sut := NewWithOutbox(outbox, pubsub, queue, nower)

	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router, outbox, queue, pubsub, sut
}
