package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myevents"
)

const (
	TopicName     = "reservation"
	confirmedName = TopicName + ".confirmed"
)

type EventService interface {
	Subscribe(c context.Context) error
	OnReservationConfirmed(c context.Context, topic string, event ReservationConfirmed) error
}

func DispatchEvent(c context.Context, reader io.Reader, service EventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case confirmedName:
		{
			event := ReservationConfirmed{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnReservationConfirmed(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("%s", envelope.EventTypeName))
	}
}

type ReservationConfirmed struct {
	StripeSessionID string
	UserID          string
	VehicleID       string
	VehicleName     string
	AmountTotal     int64
	Currency        string
}

func (e ReservationConfirmed) GetEventTypeName() string {
	return confirmedName
}

func (e ReservationConfirmed) GetAggregateName() string {
	return e.StripeSessionID
}
