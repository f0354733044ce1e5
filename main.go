package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/myconfig"
	"github.com/autosphere/storefront/lib/myhttpclient"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mymetrics"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mypubsub"
	"github.com/autosphere/storefront/lib/myqueue"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/lib/myuuid"
	"github.com/autosphere/storefront/lib/myvault"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/catalog"
	"github.com/autosphere/storefront/services/checkout"
	"github.com/autosphere/storefront/services/confirmation"
	"github.com/autosphere/storefront/services/garage"
	"github.com/autosphere/storefront/services/reservation"
	"github.com/autosphere/storefront/services/warmup"
)

type endpointRegistrar interface {
	RegisterEndpoints(c context.Context, router *mux.Router) error
}

func main() {
	c := context.Background()
	cfg := myconfig.Load()
	err := cfg.Validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	err = publisher.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering publisher endpoints: %s", err)
	}

	vault, vaultCleanup, err := myvault.New(c)
	if err != nil {
		log.Fatalf("Error creating vault: %s", err)
	}
	defer vaultCleanup()

	userStore, userStoreCleanup, err := mystore.New[auth.User](c)
	if err != nil {
		log.Fatalf("Error creating user store: %s", err)
	}
	defer userStoreCleanup()

	sessionStore, sessionStoreCleanup, err := mystore.New[auth.OAuthSession](c)
	if err != nil {
		log.Fatalf("Error creating oauth session store: %s", err)
	}
	defer sessionStoreCleanup()

	garageStore, garageStoreCleanup, err := mystore.New[garage.Garage](c)
	if err != nil {
		log.Fatalf("Error creating garage store: %s", err)
	}
	defer garageStoreCleanup()

	reservationStore, reservationStoreCleanup, err := reservation.NewStore(c, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Error creating reservation store: %s", err)
	}
	defer reservationStoreCleanup()

	deduplicator, deduplicatorCleanup, err := checkout.NewDeliveryDeduplicator(c, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Error creating webhook deduplicator: %s", err)
	}
	defer deduplicatorCleanup()

	wideEvents, wideEventsCleanup, err := mylog.NewProductionWideEventLogger()
	if err != nil {
		log.Fatalf("Error creating wide event logger: %s", err)
	}
	defer wideEventsCleanup()

	vehicles := catalog.New()
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nower)
	oauthClient := auth.NewOAuthClient(auth.GoogleProvider(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret), myhttpclient.New())

	services := []endpointRegistrar{
		warmup.NewWebService(vault, nower, uuider, publisher),
		catalog.NewWebService(vehicles),
		auth.NewWebService(nower, uuider, userStore, sessionStore, vault, tokenIssuer, oauthClient, publisher),
		checkout.NewWebService(checkout.Config{
			SiteURL:       cfg.Server.SiteURL,
			WebhookSecret: cfg.Stripe.WebhookSecret,
		}, cfg.Stripe.PublishableKey, nower, checkout.NewPayer(cfg.Stripe.APIKey), vehicles, reservationStore, deduplicator, tokenIssuer, publisher, wideEvents),
		reservation.NewWebService(reservationStore, tokenIssuer),
		confirmation.NewWebService(reservationStore, tokenIssuer, confirmation.TimerSleeper{}, cfg.Polling.Interval, cfg.Polling.MaxAttempts),
		garage.NewWebService(cfg.Server.SiteURL, nower, vehicles, garageStore, tokenIssuer, pubsub, publisher),
	}
	for _, service := range services {
		err = service.RegisterEndpoints(c, router)
		if err != nil {
			log.Fatalf("Error registering endpoints: %s", err)
		}
	}

	mymetrics.RegisterEndpoints(router)

	startWebServerBlocking(router, cfg.Server.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
