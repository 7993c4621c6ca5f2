package health

import (
	"context"

	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServingStatus maps a report status onto the gRPC health protocol.
// Degraded services still serve.
func ServingStatus(status Status) healthpb.HealthCheckResponse_ServingStatus {
	switch status {
	case StatusHealthy, StatusDegraded:
		return healthpb.HealthCheckResponse_SERVING
	case StatusUnhealthy:
		return healthpb.HealthCheckResponse_NOT_SERVING
	default:
		return healthpb.HealthCheckResponse_UNKNOWN
	}
}

// Publish runs all checks and sets the resulting serving status on srv for
// the overall server ("") and each named service
func (r *Registry) Publish(ctx context.Context, srv *grpchealth.Server, services ...string) *Report {
	report := r.Check(ctx)
	status := ServingStatus(report.Status)

	srv.SetServingStatus("", status)
	for _, service := range services {
		srv.SetServingStatus(service, status)
	}
	return report
}
