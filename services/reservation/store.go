package reservation

import (
	"context"
)

//go:generate mockgen -source=store.go -package reservation -destination store_mock.go Store
type Store interface {
	// CreateIfAbsent stores the reservation unless one exists for the same session id.
	CreateIfAbsent(c context.Context, r Reservation) (bool, error)
	FindBySessionID(c context.Context, sessionID string) (Reservation, bool, error)
	ListByUser(c context.Context, userID string) ([]Reservation, error)
}

// NewStore picks postgres when a database url is configured and the document store otherwise.
func NewStore(c context.Context, databaseURL string) (Store, func(), error) {
	if databaseURL != "" {
		return NewPostgresStore(c, databaseURL)
	}

	return NewDocumentStore(c)
}
