package alerts

import "github.com/gen2brain/beeep"

// DesktopNotifier delivers notifications through the platform notification
// service.
type DesktopNotifier struct{}

// Notify shows a desktop notification.
func (DesktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// NopNotifier discards notifications. Used in tests and when the platform
// has no notification service.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(title, body string) error { return nil }
