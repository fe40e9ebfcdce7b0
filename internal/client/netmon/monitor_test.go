package netmon

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	err error
}

func (p *fakeProber) Health(ctx context.Context) error { return p.err }

type fakeDrainer struct {
	calls int
	err   error
}

func (d *fakeDrainer) Drain(ctx context.Context) error {
	d.calls++
	return d.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := New(&fakeProber{}, testLogger(), time.Minute)
	assert.False(t, m.IsOnline())
}

func TestProbe_OnlineTransition_TriggersDrainOnce(t *testing.T) {
	prober := &fakeProber{}
	drainer := &fakeDrainer{}

	m := New(prober, testLogger(), time.Minute)
	m.SetDrainer(drainer)

	var events []Topic
	m.Subscribe(TopicOnline, func(e Event) { events = append(events, e.Topic) })
	m.Subscribe(TopicOnline, func(e Event) { events = append(events, e.Topic) })

	// Переход offline→online: drain ровно один раз, не по разу на подписчика
	assert.True(t, m.Probe(context.Background()))
	assert.Equal(t, 1, drainer.calls)
	assert.Len(t, events, 2)

	// Повторный успешный probe — перехода нет, drain не дергается
	assert.True(t, m.Probe(context.Background()))
	assert.Equal(t, 1, drainer.calls)
	assert.Len(t, events, 2)
}

func TestProbe_OfflineTransition(t *testing.T) {
	prober := &fakeProber{}
	m := New(prober, testLogger(), time.Minute)

	var gotOffline bool
	m.Subscribe(TopicOffline, func(e Event) { gotOffline = true })

	require.True(t, m.Probe(context.Background()))

	prober.err = errors.New("connection refused")
	assert.False(t, m.Probe(context.Background()))
	assert.True(t, gotOffline)
	assert.False(t, m.IsOnline())
}

func TestProbe_DrainFailureDoesNotRevertState(t *testing.T) {
	drainer := &fakeDrainer{err: errors.New("server unavailable")}

	m := New(&fakeProber{}, testLogger(), time.Minute)
	m.SetDrainer(drainer)

	// Переход состоялся, несмотря на неудачный drain
	assert.True(t, m.Probe(context.Background()))
	assert.True(t, m.IsOnline())
	assert.Equal(t, 1, drainer.calls)
}

func TestForcedOffline_MasksProbe(t *testing.T) {
	m := New(&fakeProber{}, testLogger(), time.Minute)
	drainer := &fakeDrainer{}
	m.SetDrainer(drainer)

	require.True(t, m.Probe(context.Background()))

	// Forced-offline перекрывает живую сеть
	m.SetForcedOffline(context.Background(), true)
	assert.False(t, m.IsOnline())

	// Probe при forced-offline не возвращает online
	assert.False(t, m.Probe(context.Background()))

	// Снятие forced-offline при живой сети — это переход online, drain дернулся
	before := drainer.calls
	m.SetForcedOffline(context.Background(), false)
	assert.True(t, m.IsOnline())
	assert.Equal(t, before+1, drainer.calls)
}

func TestSubscribe_DeterministicFanOutOrder(t *testing.T) {
	m := New(&fakeProber{}, testLogger(), time.Minute)

	var order []int
	m.Subscribe(TopicCacheUpdated, func(e Event) { order = append(order, 1) })
	m.Subscribe(TopicCacheUpdated, func(e Event) { order = append(order, 2) })
	m.Subscribe(TopicCacheUpdated, func(e Event) { order = append(order, 3) })

	m.Publish(Event{Topic: TopicCacheUpdated, Payload: "https://example.com/"})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestUnsubscribe(t *testing.T) {
	m := New(&fakeProber{}, testLogger(), time.Minute)

	var calls int
	id := m.Subscribe(TopicSyncAbandoned, func(e Event) { calls++ })
	m.Publish(Event{Topic: TopicSyncAbandoned})
	require.Equal(t, 1, calls)

	m.Unsubscribe(TopicSyncAbandoned, id)
	m.Publish(Event{Topic: TopicSyncAbandoned})
	assert.Equal(t, 1, calls)
}
