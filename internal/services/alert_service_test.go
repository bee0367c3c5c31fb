package services

import (
	"testing"

	"github.com/kraken-hp/brain/internal/models"
)

func TestNotifyEscalationNoURLs(t *testing.T) {
	svc := NewAlertService(nil)
	svc.NotifyEscalation("s1", models.ActionTarpit, "wget x")
}

func TestNotifyEscalationSwallowsDeliveryErrors(t *testing.T) {
	// An unparseable destination must never propagate past the service.
	svc := NewAlertService([]string{"not-a-shoutrrr-url"})
	svc.NotifyEscalation("s1", models.ActionInk, "cat /dev/random")
}
