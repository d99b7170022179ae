package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New(nil)
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventThemeChanged, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ThemeChangedEvent{Theme: "light"})

	select {
	case e := <-received:
		ev, ok := e.(ThemeChangedEvent)
		require.True(t, ok)
		require.Equal(t, "light", ev.Theme)
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	bus := New(nil)
	themeEvents := make(chan DomainEvent, 2)

	bus.Subscribe(EventThemeChanged, func(e DomainEvent) {
		themeEvents <- e
	})

	bus.Publish(SidebarToggledEvent{Collapsed: true})
	bus.Publish(ThemeChangedEvent{Theme: "dark"})

	select {
	case e := <-themeEvents:
		require.Equal(t, domain.EventThemeChanged, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}

	select {
	case e := <-themeEvents:
		t.Fatalf("unexpected extra event: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New(nil)
	var mu sync.Mutex
	count := 0

	unsubscribe := bus.Subscribe(EventPaletteOpened, func(DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	bus.Publish(PaletteOpenedEvent{})
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 1
	}, time.Second, 10*time.Millisecond)

	unsubscribe()
	bus.Publish(PaletteOpenedEvent{})

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, count, "no delivery after unsubscribe")
}

func TestUnsubscribeOneOfSeveral(t *testing.T) {
	bus := New(nil)
	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)

	unsubFirst := bus.Subscribe(EventPaletteClosed, func(DomainEvent) { first <- struct{}{} })
	bus.Subscribe(EventPaletteClosed, func(DomainEvent) { second <- struct{}{} })

	unsubFirst()
	bus.Publish(PaletteClosedEvent{})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber never saw the event")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler still called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillTheBus(t *testing.T) {
	bus := New(nil)
	received := make(chan struct{}, 1)

	bus.Subscribe(EventError, func(DomainEvent) {
		panic("handler blew up")
	})
	bus.Subscribe(EventError, func(DomainEvent) {
		received <- struct{}{}
	})

	bus.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("a panicking handler took down delivery")
	}

	// The bus itself must survive for later events too
	bus.Publish(ErrorEvent{Message: "again"})
	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("bus stopped dispatching after a handler panic")
	}
}
