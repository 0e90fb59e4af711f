package netmon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// flakyProber отвечает на health-пробы согласно переключаемому флагу
type flakyProber struct {
	healthy atomic.Bool
}

func (p *flakyProber) Health(context.Context) error {
	if p.healthy.Load() {
		return nil
	}
	return errors.New("connection refused")
}

func TestSetOnline_NotifiesOnTransition(t *testing.T) {
	monitor := NewPollingMonitor(nil, time.Minute, testLogger())

	var notifications []bool
	monitor.Subscribe(func(online bool) {
		notifications = append(notifications, online)
	})

	monitor.SetOnline(true)
	monitor.SetOnline(true) // без перехода — без уведомления
	monitor.SetOnline(false)

	assert.Equal(t, []bool{true, false}, notifications)
	assert.False(t, monitor.IsOnline())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	monitor := NewPollingMonitor(nil, time.Minute, testLogger())

	var first, second int
	unsubscribe := monitor.Subscribe(func(bool) { first++ })
	monitor.Subscribe(func(bool) { second++ })

	monitor.SetOnline(true)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	unsubscribe()
	monitor.SetOnline(false)

	assert.Equal(t, 1, first, "Unsubscribed callback must not fire")
	assert.Equal(t, 2, second)
}

func TestIsOnline_DefaultsToOffline(t *testing.T) {
	monitor := NewPollingMonitor(nil, time.Minute, testLogger())

	assert.False(t, monitor.IsOnline(), "Before the first probe the device is presumed offline")
}

// slowProber отвечает успешно, но с заметной задержкой
type slowProber struct {
	delay time.Duration
}

func (p *slowProber) Health(context.Context) error {
	time.Sleep(p.delay)
	return nil
}

func TestStart_FirstProbeIsSynchronous(t *testing.T) {
	monitor := NewPollingMonitor(&slowProber{delay: 20 * time.Millisecond}, time.Minute, testLogger())

	monitor.Start(context.Background())
	defer monitor.Stop()

	assert.True(t, monitor.IsOnline(),
		"IsOnline right after Start must reflect the completed first probe")
}

func TestPollingMonitor_TracksServerHealth(t *testing.T) {
	prober := &flakyProber{}
	prober.healthy.Store(true)

	monitor := NewPollingMonitor(prober, 10*time.Millisecond, testLogger())
	monitor.Start(context.Background())
	defer monitor.Stop()

	require.Eventually(t, monitor.IsOnline, time.Second, 5*time.Millisecond,
		"First successful probe should flip to online")

	prober.healthy.Store(false)
	require.Eventually(t, func() bool { return !monitor.IsOnline() }, time.Second, 5*time.Millisecond,
		"Failed probe should flip back to offline")

	prober.healthy.Store(true)
	require.Eventually(t, monitor.IsOnline, time.Second, 5*time.Millisecond)
}

func TestPollingMonitor_StopTerminatesLoop(t *testing.T) {
	prober := &flakyProber{}
	monitor := NewPollingMonitor(prober, 10*time.Millisecond, testLogger())
	monitor.Start(context.Background())

	done := make(chan struct{})
	go func() {
		monitor.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
