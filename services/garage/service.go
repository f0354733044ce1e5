package garage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mypubsub"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/services/catalog"
	"github.com/autosphere/storefront/services/reservation"
)

type service struct {
	logger      mylog.Logger
	siteURL     string
	nower       mytime.Nower
	vehicles    catalog.Lookup
	garageStore mystore.Store[Garage]
	subscriber  mypubsub.PubSub
	publisher   mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, siteURL string, nower mytime.Nower, vehicles catalog.Lookup, garageStore mystore.Store[Garage],
	subscriber mypubsub.PubSub, publisher mypublisher.Publisher) *service {
	return &service{
		logger:      logger,
		siteURL:     strings.TrimSuffix(siteURL, "/"),
		nower:       nower,
		vehicles:    vehicles,
		garageStore: garageStore,
		subscriber:  subscriber,
		publisher:   publisher,
	}
}

func (s *service) Subscribe(c context.Context) error {
	err := s.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	err = s.subscriber.CreateTopic(c, reservation.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", reservation.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, reservation.TopicName, s.siteURL+"/api/garage/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", reservation.TopicName, err)
	}

	return nil
}

func (s *service) get(c context.Context, userUID string) (Garage, error) {
	garage, exists, err := s.garageStore.Get(c, userUID)
	if err != nil {
		return Garage{}, myerrors.NewInternalError(fmt.Errorf("error fetching garage of %s: %s", userUID, err))
	}
	if !exists {
		return Garage{UserUID: userUID, SavedVehicleIDs: []string{}}, nil
	}
	return garage, nil
}

func (s *service) toggle(c context.Context, userUID string, vehicleID string) (Garage, bool, error) {
	_, exists := s.vehicles.VehicleByID(vehicleID)
	if !exists {
		return Garage{}, false, myerrors.NewNotFoundError(fmt.Errorf("vehicle %s not found", vehicleID))
	}

	now := s.nower.Now()
	garage := Garage{}
	saved := false

	err := s.garageStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		var err error
		garage, err = s.get(c, userUID)
		if err != nil {
			return err
		}

		vehicles := garage.Saved()
		saved = vehicles.Toggle(vehicleID)
		garage.SavedVehicleIDs = vehicles.IDs()
		garage.LastModified = &now

		err = s.garageStore.Put(c, userUID, garage)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing garage of %s: %s", userUID, err))
		}

		if saved {
			err = s.publisher.Publish(c, TopicName, VehicleSaved{UserUID: userUID, VehicleID: vehicleID, At: now.Format(time.RFC3339Nano)})
		} else {
			err = s.publisher.Publish(c, TopicName, VehicleRemoved{UserUID: userUID, VehicleID: vehicleID, At: now.Format(time.RFC3339Nano)})
		}
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return Garage{}, false, err
	}

	s.logger.Log(c, userUID, mylog.SeverityInfo, "Vehicle %s saved=%v in garage of %s", vehicleID, saved, userUID)

	return garage, saved, nil
}

// OnReservationConfirmed keeps a reserved vehicle in the garage of the user who reserved it.
func (s *service) OnReservationConfirmed(c context.Context, topic string, event reservation.ReservationConfirmed) error {
	s.logger.Log(c, event.UserID, mylog.SeverityInfo, "Reservation %s confirmed: add vehicle %s to garage of %s", event.StripeSessionID, event.VehicleID, event.UserID)

	now := s.nower.Now()

	return s.garageStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		garage, err := s.get(c, event.UserID)
		if err != nil {
			return err
		}

		vehicles := garage.Saved()
		if !vehicles.Add(event.VehicleID) {
			return nil
		}
		garage.SavedVehicleIDs = vehicles.IDs()
		garage.LastModified = &now

		err = s.garageStore.Put(c, event.UserID, garage)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing garage of %s: %s", event.UserID, err))
		}

		return nil
	})
}
