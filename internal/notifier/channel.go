package notifier

import (
	"fmt"

	"github.com/julianstephens/energycoach/internal/logger"
	"github.com/julianstephens/energycoach/internal/models"
)

// Permission is the outcome of a delivery capability check.
type Permission string

const (
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnsupported Permission = "unsupported"
)

// Channel delivers a titled message to the user.
type Channel interface {
	Name() string
	RequestPermission() Permission
	Deliver(title, body string) error
}

// NoopChannel accepts every message and delivers nothing.
type NoopChannel struct{}

func (NoopChannel) Name() string                  { return "noop" }
func (NoopChannel) RequestPermission() Permission { return PermissionUnsupported }
func (NoopChannel) Deliver(string, string) error  { return nil }

type fallbackChannel struct {
	primary   Channel
	secondary Channel
}

// Fallback tries primary first and hands the message to secondary when it fails.
func Fallback(primary, secondary Channel) Channel {
	return &fallbackChannel{primary: primary, secondary: secondary}
}

func (f *fallbackChannel) Name() string {
	return f.primary.Name() + "+" + f.secondary.Name()
}

func (f *fallbackChannel) RequestPermission() Permission {
	if p := f.primary.RequestPermission(); p == PermissionGranted {
		return p
	}
	return f.secondary.RequestPermission()
}

func (f *fallbackChannel) Deliver(title, body string) error {
	err := f.primary.Deliver(title, body)
	if err == nil {
		return nil
	}
	logger.Warn("Primary notification channel failed, falling back", "channel", f.primary.Name(), "error", err)
	if err2 := f.secondary.Deliver(title, body); err2 != nil {
		return fmt.Errorf("%s: %w; %s: %w", f.primary.Name(), err, f.secondary.Name(), err2)
	}
	return nil
}

// Probe resolves the delivery channel once at startup. The tray app is
// preferred, a configured webhook is the fallback and Noop is the floor.
func Probe(settings models.Settings) Channel {
	var available []Channel

	native := NewNativeChannel()
	if p := native.RequestPermission(); p == PermissionGranted {
		available = append(available, native)
	} else {
		logger.Debug("Native notification channel unavailable", "permission", p)
	}

	if settings.WebhookURL != "" {
		web := NewWebChannel(settings.WebhookURL)
		if p := web.RequestPermission(); p == PermissionGranted {
			available = append(available, web)
		} else {
			logger.Warn("Webhook notification channel rejected", "url", settings.WebhookURL, "permission", p)
		}
	}

	switch len(available) {
	case 0:
		return NoopChannel{}
	case 1:
		return available[0]
	default:
		return Fallback(available[0], available[1])
	}
}
