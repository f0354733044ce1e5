package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/autosphere/storefront/lib/myhttpclient"
	"github.com/autosphere/storefront/services/checkout"
	"github.com/autosphere/storefront/services/checkoutclient"
	"github.com/autosphere/storefront/services/confirmation"
)

// reserve drives a reservation against a running storefront: it starts a checkout session for a
// vehicle and, once the shopper has paid, polls until the reservation shows up.
func main() {
	_ = godotenv.Load()

	baseURL := flag.String("base-url", envOr("SITE_URL", "http://localhost:8080"), "storefront base url")
	token := flag.String("token", os.Getenv("RESERVE_TOKEN"), "session token of the shopper")
	vehicleID := flag.String("vehicle", "", "id of the vehicle to reserve")
	vehicleName := flag.String("name", "", "display name of the vehicle")
	price := flag.String("price", "", "display price of the vehicle, e.g. $162,900")
	sessionID := flag.String("session", "", "checkout session to await instead of starting a new one")
	interval := flag.Duration("interval", 2*time.Second, "delay between confirmation queries")
	maxAttempts := flag.Int("attempts", 10, "maximum number of confirmation queries")
	flag.Parse()

	c, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	httpSender := myhttpclient.New()

	if *sessionID == "" {
		outcome, err := checkoutclient.NewInitiator(*baseURL, httpSender).Reserve(c, *token, checkout.ReservationRequest{
			VehicleID:   *vehicleID,
			VehicleName: *vehicleName,
			Price:       *price,
		})
		if err != nil {
			log.Fatalf("Error starting reservation: %s", err)
		}
		if outcome.LoginRequired {
			fmt.Printf("Login required: %s%s\n", *baseURL, outcome.RedirectURL)
			os.Exit(1)
		}
		fmt.Printf("Complete the payment at: %s\n", outcome.RedirectURL)
		return
	}

	if *token == "" {
		fmt.Printf("Login required: %s%s\n", *baseURL, checkoutclient.ConfirmationLoginURL(*sessionID))
		os.Exit(1)
	}

	finder := checkoutclient.NewReservationFinder(*baseURL, *token, httpSender)
	poller := confirmation.NewPoller(finder, confirmation.TimerSleeper{}, *interval, *maxAttempts)

	result, err := poller.Await(c, *sessionID, *vehicleName)
	if err != nil {
		log.Fatalf("Stopped waiting for session %s: %s", *sessionID, err)
	}

	switch result.State {
	case confirmation.StateFound:
		fmt.Printf("Reserved %s (%s) after %d queries\n", result.VehicleName, result.Status, result.Attempts)
	default:
		fmt.Printf("Payment received for %s; the confirmation is still being processed\n", result.VehicleName)
		os.Exit(2)
	}
}

func envOr(key string, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
