// Package router performs client-side route changes: a path string goes in,
// a NavigationRequested event comes out on the bus. Navigation is
// fire-and-forget; the shell reacts to the event, never to a return value.
package router

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
)

// portalRoutes maps a path's first segment to its portal.
var portalRoutes = map[string]domain.Portal{
	"billing":       domain.PortalBilling,
	"deployments":   domain.PortalDeployments,
	"observability": domain.PortalObservability,
	"settings":      domain.PortalSettings,
}

// Router resolves paths to portals and publishes navigation events.
type Router struct {
	bus eventbus.EventBus
	log *zap.Logger
}

// New creates a router publishing on the given bus.
func New(bus eventbus.EventBus, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{bus: bus, log: logger}
}

// Resolve maps a path to its portal. Deep paths resolve by their first
// segment, so "/billing/invoices/new" lands on the billing portal.
func Resolve(path string) domain.Portal {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return domain.PortalUnknown
	}
	segment := trimmed
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		segment = trimmed[:i]
	}
	return portalRoutes[segment]
}

// Navigate requests a route change. Each request gets a correlation ID so
// the audit log can be matched to what the user saw.
func (r *Router) Navigate(path string) {
	portal := Resolve(path)
	id := uuid.New()

	r.log.Info("navigation requested",
		zap.String("id", id.String()),
		zap.String("path", path),
		zap.String("portal", string(portal)))

	r.bus.Publish(eventbus.NavigationRequestedEvent{
		ID:     id,
		Path:   path,
		Portal: portal,
	})
}
