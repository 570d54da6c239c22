package relay

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(t *testing.T, ttl time.Duration, capacity int) *Relay {
	t.Helper()

	r := New(ttl, capacity, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(r.Close)

	return r
}

func progressEvent(bundleID uuid.UUID, scanned int) *entity.AssemblyEvent {
	return entity.NewProgressEvent(entity.EventTypeScanSuccess, &entity.AssemblySession{
		BundleID:     bundleID,
		Status:       entity.BundleStatusAssembling,
		ScannedCount: scanned,
		TargetCount:  10,
		Remaining:    10 - scanned,
	})
}

func TestRelay_PublishAndDrain_PreservesOrder(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub-1"))

	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, i)))
	}

	events := r.Drain(bundleID, "sub-1")
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Payload.ScannedCount)
	}

	// Drained events are gone.
	assert.Empty(t, r.Drain(bundleID, "sub-1"))
}

func TestRelay_MultiSubscriberFanOut(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "terminal-a"))
	require.NoError(t, r.Subscribe(bundleID, "terminal-b"))

	for i := 1; i <= 3; i++ {
		require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, i)))
	}

	// Draining one subscriber must not steal the other's events.
	eventsA := r.Drain(bundleID, "terminal-a")
	eventsB := r.Drain(bundleID, "terminal-b")

	require.Len(t, eventsA, 3)
	require.Len(t, eventsB, 3)
	for i := range eventsA {
		assert.Equal(t, eventsA[i].Payload.ScannedCount, eventsB[i].Payload.ScannedCount)
	}
}

func TestRelay_ConcurrentReadersDoNotStealEvents(t *testing.T) {
	r := newTestRelay(t, time.Minute, 4096)
	bundleID := uuid.New()

	const subscribers = 4
	const published = 200

	for i := 0; i < subscribers; i++ {
		require.NoError(t, r.Subscribe(bundleID, fmt.Sprintf("sub-%d", i)))
	}

	var wg sync.WaitGroup
	received := make([][]*entity.AssemblyEvent, subscribers)

	// Each subscriber drains concurrently while the publisher is still writing.
	for i := 0; i < subscribers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			subscriberID := fmt.Sprintf("sub-%d", idx)
			for len(received[idx]) < published {
				received[idx] = append(received[idx], r.Drain(bundleID, subscriberID)...)
			}
		}(i)
	}

	for i := 1; i <= published; i++ {
		require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, i)))
	}

	wg.Wait()

	for idx := 0; idx < subscribers; idx++ {
		require.Len(t, received[idx], published, "subscriber %d lost events", idx)
		for i, ev := range received[idx] {
			assert.Equal(t, i+1, ev.Payload.ScannedCount, "subscriber %d out of order at %d", idx, i)
		}
	}
}

func TestRelay_SubscribersAreIndependentPerBundle(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)
	bundleA := uuid.New()
	bundleB := uuid.New()

	require.NoError(t, r.Subscribe(bundleA, "sub"))
	require.NoError(t, r.Subscribe(bundleB, "sub"))

	require.NoError(t, r.Publish(bundleA, progressEvent(bundleA, 1)))

	assert.Len(t, r.Drain(bundleA, "sub"), 1)
	assert.Empty(t, r.Drain(bundleB, "sub"))
}

func TestRelay_PublishWithoutSubscribersIsNotAnError(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)

	assert.NoError(t, r.Publish(uuid.New(), progressEvent(uuid.New(), 1)))
}

func TestRelay_DuplicateSubscribeFails(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub"))
	assert.Error(t, r.Subscribe(bundleID, "sub"))
}

func TestRelay_EntriesExpireAfterTTL(t *testing.T) {
	r := newTestRelay(t, 20*time.Millisecond, 64)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub"))
	require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, 1)))

	time.Sleep(40 * time.Millisecond)

	assert.Empty(t, r.Drain(bundleID, "sub"))
}

func TestRelay_MailboxCapDropsOldest(t *testing.T) {
	r := newTestRelay(t, time.Minute, 2)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub"))
	for i := 1; i <= 3; i++ {
		require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, i)))
	}

	events := r.Drain(bundleID, "sub")
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].Payload.ScannedCount)
	assert.Equal(t, 3, events[1].Payload.ScannedCount)
}

func TestRelay_UnsubscribeDiscardsMailbox(t *testing.T) {
	r := newTestRelay(t, time.Minute, 64)
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub"))
	require.NoError(t, r.Publish(bundleID, progressEvent(bundleID, 1)))

	r.Unsubscribe(bundleID, "sub")

	assert.Empty(t, r.Drain(bundleID, "sub"))

	// Same id may register again with a fresh mailbox.
	require.NoError(t, r.Subscribe(bundleID, "sub"))
	assert.Empty(t, r.Drain(bundleID, "sub"))
}

func TestRelay_CloseRejectsFurtherUse(t *testing.T) {
	r := New(time.Minute, 64, slog.New(slog.NewTextHandler(io.Discard, nil)))
	bundleID := uuid.New()

	require.NoError(t, r.Subscribe(bundleID, "sub"))
	r.Close()

	assert.ErrorIs(t, r.Publish(bundleID, progressEvent(bundleID, 1)), ErrRelayClosed)
	assert.ErrorIs(t, r.Subscribe(bundleID, "other"), ErrRelayClosed)

	// Close is idempotent.
	r.Close()
}
