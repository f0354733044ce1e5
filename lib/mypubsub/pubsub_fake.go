package mypubsub

import (
	"context"
	"log"
	"os"
	"sync"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newFakePubSub
	}
}

// FakePubSub keeps published messages in memory so local runs and tests can inspect them.
type FakePubSub struct {
	sync.Mutex
	Topics    map[string][]string
	Endpoints map[string][]string
}

func NewFakePubSub() *FakePubSub {
	return &FakePubSub{
		Topics:    map[string][]string{},
		Endpoints: map[string][]string{},
	}
}

func newFakePubSub(c context.Context) (PubSub, func(), error) {
	return NewFakePubSub(), func() {}, nil
}

func (ps *FakePubSub) Subscribe(c context.Context, topic string, urlToPostTo string) error {
	ps.Lock()
	defer ps.Unlock()

	ps.Endpoints[topic] = append(ps.Endpoints[topic], urlToPostTo)
	return nil
}

func (ps *FakePubSub) CreateTopic(c context.Context, topic string) error {
	ps.Lock()
	defer ps.Unlock()

	if _, exists := ps.Topics[topic]; !exists {
		ps.Topics[topic] = []string{}
	}
	return nil
}

func (ps *FakePubSub) Publish(c context.Context, topic string, data string) error {
	ps.Lock()
	defer ps.Unlock()

	log.Printf("Fake-publish on topic %s: %s", topic, data)
	ps.Topics[topic] = append(ps.Topics[topic], data)
	return nil
}

func (ps *FakePubSub) Published(topic string) []string {
	ps.Lock()
	defer ps.Unlock()

	return append([]string{}, ps.Topics[topic]...)
}
