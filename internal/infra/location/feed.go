// Package location provides the in-process device location feed: the
// delivery layer publishes reported GPS samples into it and tracking
// sessions consume them as per-user streams.
package location

import (
	"context"
	"sync"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/service"

	"github.com/google/uuid"
)

// subscriptionBuffer bounds the per-subscriber channel. Delivery is
// latest-wins: a slow consumer sees the newest samples, not a backlog.
const subscriptionBuffer = 16

// DeviceFeed fans reported location updates out to per-user subscribers.
// It implements both service.LocationSource and service.LocationSink.
type DeviceFeed struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[*feedSubscription]struct{}
}

// NewDeviceFeed creates an empty feed.
func NewDeviceFeed() *DeviceFeed {
	return &DeviceFeed{
		subs: make(map[uuid.UUID]map[*feedSubscription]struct{}),
	}
}

// Subscribe opens the location stream for a user. The subscription ends
// when Close is called or the context is canceled.
func (f *DeviceFeed) Subscribe(ctx context.Context, userID uuid.UUID) (service.Subscription, error) {
	sub := &feedSubscription{
		feed:    f,
		userID:  userID,
		updates: make(chan service.LocationUpdate, subscriptionBuffer),
	}

	f.mu.Lock()
	if f.subs[userID] == nil {
		f.subs[userID] = make(map[*feedSubscription]struct{})
	}
	f.subs[userID][sub] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// Publish delivers one GPS sample to the user's subscribers.
func (f *DeviceFeed) Publish(userID uuid.UUID, sample entity.Coordinate) {
	f.deliver(userID, service.LocationUpdate{Coordinate: &sample})
}

// ReportError delivers a location-unavailable condition to the user's
// subscribers.
func (f *DeviceFeed) ReportError(userID uuid.UUID, reason error) {
	f.deliver(userID, service.LocationUpdate{Err: reason})
}

// deliver pushes an update to every subscriber of the user. Sends happen
// under the feed lock so a concurrent Close can never race a send on a
// closed channel. Full buffers drop the oldest update first.
func (f *DeviceFeed) deliver(userID uuid.UUID, update service.LocationUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs[userID] {
		select {
		case sub.updates <- update:
		default:
			select {
			case <-sub.updates:
			default:
			}
			select {
			case sub.updates <- update:
			default:
			}
		}
	}
}

// remove unregisters a subscription and closes its channel.
func (f *DeviceFeed) remove(sub *feedSubscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	userSubs := f.subs[sub.userID]
	if _, ok := userSubs[sub]; !ok {
		return
	}

	delete(userSubs, sub)
	if len(userSubs) == 0 {
		delete(f.subs, sub.userID)
	}
	close(sub.updates)
}

type feedSubscription struct {
	feed    *DeviceFeed
	userID  uuid.UUID
	updates chan service.LocationUpdate
	once    sync.Once
}

// Updates returns the stream channel. It is closed when the subscription
// is canceled.
func (s *feedSubscription) Updates() <-chan service.LocationUpdate {
	return s.updates
}

// Close cancels the subscription and releases its resources.
func (s *feedSubscription) Close() {
	s.once.Do(func() {
		s.feed.remove(s)
	})
}
