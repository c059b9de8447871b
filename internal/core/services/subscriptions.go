package services

import (
	"context"
	"fmt"

	"github.com/tgmciner/SunDevil-Connect/internal/core/events"
)

// RegisterSubscribers wires the static subscription table onto the bus.
// Called once at process start, before any request is served; nothing
// subscribes or unsubscribes after that.
func RegisterSubscribers(bus *events.Bus, notifier Notifier) {
	bus.Subscribe(events.TypeAnnouncementCreated, func(ctx context.Context, evt events.Event) error {
		a, ok := evt.(*events.AnnouncementCreated)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", evt, evt.Type())
		}
		notifier.NotifyAnnouncement(a)
		return nil
	})

	bus.Subscribe(events.TypeMembershipApproved, func(ctx context.Context, evt events.Event) error {
		m, ok := evt.(*events.MembershipApproved)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", evt, evt.Type())
		}
		notifier.NotifyMembershipApproved(m)
		return nil
	})
}
