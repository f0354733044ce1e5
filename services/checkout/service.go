package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mymetrics"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/catalog"
	"github.com/autosphere/storefront/services/reservation"
)

const (
	currency = "usd"

	outcomeNotConfigured    = "not_configured"
	outcomeMissingSignature = "missing_signature"
	outcomeInvalidSignature = "invalid_signature"
	outcomeIgnored          = "ignored"
	outcomeDuplicate        = "duplicate_delivery"
	outcomeInvalidPayload   = "invalid_payload"
	outcomeMissingMetadata  = "missing_metadata"
	outcomeStoreError       = "store_error"
	outcomeCreated          = "reservation_created"
	outcomeAlreadyRecorded  = "reservation_exists"
)

type Config struct {
	SiteURL       string
	WebhookSecret string
}

type service struct {
	cfg          Config
	logger       mylog.Logger
	nower        mytime.Nower
	payer        Payer
	vehicles     catalog.Lookup
	reservations reservation.Store
	deduplicator DeliveryDeduplicator
	publisher    mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cfg Config, logger mylog.Logger, nower mytime.Nower, payer Payer, vehicles catalog.Lookup,
	reservations reservation.Store, deduplicator DeliveryDeduplicator, publisher mypublisher.Publisher) *service {
	return &service{
		cfg:          cfg,
		logger:       logger,
		nower:        nower,
		payer:        payer,
		vehicles:     vehicles,
		reservations: reservations,
		deduplicator: deduplicator,
		publisher:    publisher,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	for _, topic := range []string{TopicName, reservation.TopicName} {
		err := s.publisher.CreateTopic(c, topic)
		if err != nil {
			return fmt.Errorf("error creating topic %s: %s", topic, err)
		}
	}

	return nil
}

// startCheckout creates a hosted checkout session for the reservation of one vehicle and returns its url.
func (s *service) startCheckout(c context.Context, identity auth.Identity, req ReservationRequest) (string, error) {
	s.logger.Log(c, identity.UID, mylog.SeverityInfo, "Start checkout of vehicle %s for user %s", req.VehicleID, identity.UID)

	amount, err := s.validate(req)
	if err != nil {
		mymetrics.CheckoutSessionsTotal.WithLabelValues("rejected").Inc()
		return "", err
	}

	created, err := s.payer.CreateCheckoutSession(c, s.sessionParams(identity, req, amount))
	if err != nil {
		mymetrics.CheckoutSessionsTotal.WithLabelValues("failed").Inc()
		return "", err
	}

	err = s.publisher.Publish(c, TopicName, CheckoutStarted{
		SessionID:   created.ID,
		UserID:      identity.UID,
		VehicleID:   req.VehicleID,
		AmountTotal: amount,
		Currency:    currency,
	})
	if err != nil {
		s.logger.Log(c, identity.UID, mylog.SeverityError, "Error publishing checkout-started for session %s: %s", created.ID, err)
	}

	mymetrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()

	return created.URL, nil
}

func (s *service) validate(req ReservationRequest) (int64, error) {
	if req.VehicleID == "" || req.VehicleName == "" || req.Price == "" {
		return 0, myerrors.NewInvalidInputError(fmt.Errorf("vehicleId, vehicleName and price are required"))
	}

	amount, err := catalog.ParsePrice(req.Price)
	if err != nil {
		return 0, myerrors.NewInvalidInputError(err)
	}

	vehicle, exists := s.vehicles.VehicleByID(req.VehicleID)
	if exists {
		listed, err := catalog.ParsePrice(vehicle.Price)
		if err == nil && listed != amount {
			return 0, myerrors.NewInvalidInputError(fmt.Errorf("price %s does not match listed price %s of %s", req.Price, vehicle.Price, req.VehicleID))
		}
	}

	return amount, nil
}

func (s *service) sessionParams(identity auth.Identity, req ReservationRequest, amount int64) stripe.CheckoutSessionParams {
	siteURL := strings.TrimSuffix(s.cfg.SiteURL, "/")

	params := stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.VehicleName),
						Description: stripe.String("Reservation of " + req.VehicleName),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		// {CHECKOUT_SESSION_ID} is substituted by Stripe and must stay unescaped
		SuccessURL:        stripe.String(siteURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}&vehicle=" + url.QueryEscape(req.VehicleName)),
		CancelURL:         stripe.String(siteURL + "/vehicles/" + url.PathEscape(req.VehicleID)),
		ClientReferenceID: stripe.String(identity.UID),
	}
	if identity.Email != "" {
		params.CustomerEmail = stripe.String(identity.Email)
	}
	params.AddMetadata(metadataUserID, identity.UID)
	params.AddMetadata(metadataVehicleID, req.VehicleID)
	params.AddMetadata(metadataVehicleName, req.VehicleName)

	return params
}

// webhookNotification verifies and applies one Stripe webhook delivery. Everything learned is recorded on the wide event.
func (s *service) webhookNotification(c context.Context, payload []byte, signature string, wideEvent *mylog.WideEvent) error {
	if s.cfg.WebhookSecret == "" {
		// an empty key would verify any signature computed with an empty key
		wideEvent.Set("outcome", outcomeNotConfigured)
		return myerrors.NewUnavailableError(fmt.Errorf("webhook signing secret not configured"))
	}

	if signature == "" {
		wideEvent.Set("outcome", outcomeMissingSignature)
		return myerrors.NewInvalidInputError(fmt.Errorf("no signature"))
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.cfg.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		wideEvent.Set("outcome", outcomeInvalidSignature)
		return myerrors.NewInvalidInputError(fmt.Errorf("webhook error: %s", err))
	}

	wideEvent.Set("event_type", string(event.Type))
	wideEvent.Set("stripe_event_id", event.ID)

	if event.Type != "checkout.session.completed" {
		wideEvent.Set("outcome", outcomeIgnored)
		return nil
	}

	claimed, err := s.deduplicator.Claim(c, event.ID)
	if err != nil {
		// the unique session id in the store still prevents a second reservation
		s.logger.Log(c, event.ID, mylog.SeverityWarn, "Error claiming delivery %s: %s", event.ID, err)
		claimed = true
	}
	if !claimed {
		wideEvent.Set("outcome", outcomeDuplicate)
		return nil
	}

	err = s.processCompletedSession(c, event, wideEvent)
	if err != nil {
		releaseErr := s.deduplicator.Release(c, event.ID)
		if releaseErr != nil {
			s.logger.Log(c, event.ID, mylog.SeverityWarn, "Error releasing delivery %s: %s", event.ID, releaseErr)
		}
		return err
	}

	return nil
}

func (s *service) processCompletedSession(c context.Context, event stripe.Event, wideEvent *mylog.WideEvent) error {
	completed := stripe.CheckoutSession{}
	err := json.Unmarshal(event.Data.Raw, &completed)
	if err != nil {
		wideEvent.Set("outcome", outcomeInvalidPayload)
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing checkout session: %s", err))
	}

	wideEvent.Set("stripe_session_id", completed.ID)
	wideEvent.Set("metadata", completed.Metadata)

	userID := completed.Metadata[metadataUserID]
	vehicleID := completed.Metadata[metadataVehicleID]
	if userID == "" || vehicleID == "" {
		wideEvent.Set("outcome", outcomeMissingMetadata)
		return myerrors.NewInvalidInputError(fmt.Errorf("checkout session %s misses user_id or vehicle_id", completed.ID))
	}

	r := reservation.Reservation{
		UserID:          userID,
		VehicleID:       vehicleID,
		VehicleName:     completed.Metadata[metadataVehicleName],
		Price:           reservation.PriceFromAmountTotal(completed.AmountTotal),
		AmountTotal:     completed.AmountTotal,
		Currency:        string(completed.Currency),
		StripeSessionID: completed.ID,
		Status:          reservation.StatusConfirmed,
		CreatedAt:       s.nower.Now(),
	}

	created, err := s.reservations.CreateIfAbsent(c, r)
	if err != nil {
		wideEvent.Set("outcome", outcomeStoreError)
		wideEvent.Set("db_error", err.Error())
		return myerrors.NewInternalError(fmt.Errorf("webhook handler failed: %s", err))
	}

	if !created {
		wideEvent.Set("outcome", outcomeAlreadyRecorded)
		return nil
	}

	mymetrics.ReservationsCreatedTotal.Inc()
	wideEvent.Set("outcome", outcomeCreated)

	err = s.publisher.Publish(c, reservation.TopicName, reservation.ReservationConfirmed{
		StripeSessionID: r.StripeSessionID,
		UserID:          r.UserID,
		VehicleID:       r.VehicleID,
		VehicleName:     r.VehicleName,
		AmountTotal:     r.AmountTotal,
		Currency:        r.Currency,
	})
	if err != nil {
		wideEvent.Set("publish_error", err.Error())
		s.logger.Log(c, r.StripeSessionID, mylog.SeverityError, "Error publishing reservation-confirmed for session %s: %s", r.StripeSessionID, err)
	}

	return nil
}
