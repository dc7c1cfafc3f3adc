package telemetry

import (
	"context"
	"testing"

	"autocare_api/internal/infrastructure/config"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown := Setup(context.Background(), config.Telemetry{ServiceName: "autocare-api"})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
