package router

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		path string
		want domain.Portal
	}{
		{"/billing", domain.PortalBilling},
		{"/billing/invoices/new", domain.PortalBilling},
		{"/deployments", domain.PortalDeployments},
		{"/observability", domain.PortalObservability},
		{"/settings/users", domain.PortalSettings},
		{"billing", domain.PortalBilling},
		{"/billing/", domain.PortalBilling},
		{"/logs", domain.PortalUnknown},
		{"/", domain.PortalUnknown},
		{"", domain.PortalUnknown},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Resolve(tc.path), "path %q", tc.path)
	}
}

func TestNavigatePublishesEvent(t *testing.T) {
	bus := eventbus.New(nil)
	received := make(chan eventbus.NavigationRequestedEvent, 1)
	bus.Subscribe(eventbus.EventNavigationRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.NavigationRequestedEvent); ok {
			received <- ev
		}
	})

	New(bus, nil).Navigate("/billing/invoices/new")

	select {
	case ev := <-received:
		require.Equal(t, "/billing/invoices/new", ev.Path)
		require.Equal(t, domain.PortalBilling, ev.Portal)
		require.NotEqual(t, uuid.Nil, ev.ID, "each navigation carries a correlation id")
	case <-time.After(time.Second):
		t.Fatal("no navigation event received")
	}
}

func TestNavigateUnknownPathStillPublishes(t *testing.T) {
	bus := eventbus.New(nil)
	received := make(chan eventbus.NavigationRequestedEvent, 1)
	bus.Subscribe(eventbus.EventNavigationRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.NavigationRequestedEvent); ok {
			received <- ev
		}
	})

	New(bus, nil).Navigate("/logs")

	select {
	case ev := <-received:
		require.Equal(t, domain.PortalUnknown, ev.Portal, "unroutable paths publish with the unknown portal")
	case <-time.After(time.Second):
		t.Fatal("no navigation event received")
	}
}
