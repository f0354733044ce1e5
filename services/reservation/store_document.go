package reservation

import (
	"context"
	"fmt"

	"github.com/autosphere/storefront/lib/mystore"
)

type DocumentStore struct {
	store mystore.Store[Reservation]
}

func NewDocumentStore(c context.Context) (*DocumentStore, func(), error) {
	store, cleanup, err := mystore.New[Reservation](c)
	if err != nil {
		return nil, func() {}, err
	}
	return NewDocumentStoreWith(store), cleanup, nil
}

func NewDocumentStoreWith(store mystore.Store[Reservation]) *DocumentStore {
	return &DocumentStore{
		store: store,
	}
}

func (s *DocumentStore) CreateIfAbsent(c context.Context, r Reservation) (bool, error) {
	created := false
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		_, exists, err := s.store.Get(c, r.StripeSessionID)
		if err != nil {
			return fmt.Errorf("error fetching reservation %s: %s", r.StripeSessionID, err)
		}
		if exists {
			created = false
			return nil
		}

		err = s.store.Put(c, r.StripeSessionID, r)
		if err != nil {
			return fmt.Errorf("error storing reservation %s: %s", r.StripeSessionID, err)
		}
		created = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

func (s *DocumentStore) FindBySessionID(c context.Context, sessionID string) (Reservation, bool, error) {
	return s.store.Get(c, sessionID)
}

func (s *DocumentStore) ListByUser(c context.Context, userID string) ([]Reservation, error) {
	return s.store.Query(c, []mystore.Filter{
		{Field: "UserID", Compare: "=", Value: userID},
	}, "-CreatedAt")
}
