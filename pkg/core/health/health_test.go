package health

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func fixed(status Status) func(ctx context.Context) CheckResult {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestProbeCheck(t *testing.T) {
	ok := ProbeCheck("tokenizer", func(ctx context.Context) error { return nil })
	if ok.Name() != "tokenizer" {
		t.Errorf("Name() = %q, want tokenizer", ok.Name())
	}
	if got := ok.Check(context.Background()); got.Status != StatusHealthy || got.Name != "tokenizer" {
		t.Errorf("Check() = %+v, want healthy tokenizer", got)
	}

	failing := ProbeCheck("tokenizer", func(ctx context.Context) error {
		return errors.New("unexpected tokens")
	})
	got := failing.Check(context.Background())
	if got.Status != StatusUnhealthy || got.Message != "unexpected tokens" {
		t.Errorf("Check() = %+v, want unhealthy with the returned error", got)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]Status
		want   Status
	}{
		{"no checks", nil, StatusHealthy},
		{"all healthy", map[string]Status{"stringx": StatusHealthy, "listener": StatusHealthy}, StatusHealthy},
		{"degraded wins over healthy", map[string]Status{"stringx": StatusHealthy, "cache": StatusDegraded}, StatusDegraded},
		{"unhealthy wins over degraded", map[string]Status{"cache": StatusDegraded, "listener": StatusUnhealthy}, StatusUnhealthy},
		{"unknown does not lower status", map[string]Status{"stringx": StatusHealthy, "listener": StatusUnknown}, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("textkit", "1.0.0")
			for name, status := range tt.checks {
				registry.RegisterFunc(name, fixed(status))
			}

			report := registry.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != (tt.want == StatusHealthy) {
				t.Errorf("Healthy() = %v for status %v", report.Healthy(), report.Status)
			}
			if len(report.Checks) != len(tt.checks) {
				t.Errorf("len(Checks) = %d, want %d", len(report.Checks), len(tt.checks))
			}
		})
	}
}

func TestRegistry_ReportFields(t *testing.T) {
	registry := NewRegistry("textkit", "1.2.3")
	registry.RegisterFunc("stringx", fixed(StatusHealthy))
	registry.Register(AlwaysHealthy("listener"))
	registry.RegisterFunc("case-rules", fixed(StatusHealthy))

	report := registry.CheckWithTimeout(time.Second)
	if report.Service != "textkit" || report.Version != "1.2.3" {
		t.Errorf("Service/Version = %s/%s", report.Service, report.Version)
	}

	for i, want := range []string{"case-rules", "listener", "stringx"} {
		check := report.Checks[i]
		if check.Name != want {
			t.Errorf("Checks[%d].Name = %q, want %q", i, check.Name, want)
		}
		if check.Timestamp.IsZero() {
			t.Errorf("Checks[%d].Timestamp not set", i)
		}
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")
	registry.RegisterFunc("listener", fixed(StatusUnhealthy))
	if registry.Check(context.Background()).Healthy() {
		t.Fatal("registry healthy with failing check")
	}

	registry.Unregister("listener")
	if report := registry.Check(context.Background()); !report.Healthy() || len(report.Checks) != 0 {
		t.Errorf("after Unregister report = %v", report)
	}
}

func TestRegistry_PanickingCheck(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")
	registry.RegisterFunc("stringx", func(ctx context.Context) CheckResult {
		panic("index out of range")
	})

	report := registry.Check(context.Background())
	if report.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", report.Status)
	}
	check := report.Checks[0]
	if check.Name != "stringx" || !strings.Contains(check.Message, "index out of range") {
		t.Errorf("check = %+v", check)
	}
}

func TestRegistry_CheckTimeout(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")
	registry.SetCheckTimeout(20 * time.Millisecond)
	registry.Register(ProbeCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	start := time.Now()
	report := registry.Check(context.Background())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Check() took %v, per-check timeout not applied", elapsed)
	}
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
}

func TestRegistry_CheckTimeout_IgnoredContext(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")
	registry.SetCheckTimeout(50 * time.Millisecond)
	registry.Register(ProbeCheck("stuck", func(ctx context.Context) error {
		time.Sleep(2 * time.Second)
		return nil
	}))
	registry.Register(AlwaysHealthy("stringx"))

	start := time.Now()
	report := registry.Check(context.Background())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Check() took %v, want it bounded by the check timeout", elapsed)
	}
	if report.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", report.Status)
	}

	failing := report.Failing()
	if len(failing) != 1 || failing[0].Name != "stuck" {
		t.Fatalf("Failing() = %+v, want only stuck", failing)
	}
	if !strings.Contains(failing[0].Message, "timed out") {
		t.Errorf("Message = %q, want a timeout message", failing[0].Message)
	}
}

func TestRegistry_ChecksRunConcurrently(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")

	var calls int32
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		registry.RegisterFunc(name, func(ctx context.Context) CheckResult {
			atomic.AddInt32(&calls, 1)
			time.Sleep(20 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		})
	}

	start := time.Now()
	registry.Check(context.Background())
	if elapsed := time.Since(start); elapsed > 80*time.Millisecond {
		t.Errorf("Check() took %v, checks ran sequentially", elapsed)
	}
	if got := atomic.LoadInt32(&calls); got != 5 {
		t.Errorf("calls = %d, want 5", got)
	}
}

func TestReport_String(t *testing.T) {
	report := &Report{
		Service: "textkit",
		Version: "1.0.0",
		Status:  StatusUnhealthy,
		Uptime:  90 * time.Second,
		Checks: []CheckResult{
			{Name: "listener", Status: StatusUnhealthy},
			{Name: "stringx", Status: StatusHealthy},
		},
	}

	want := "textkit 1.0.0: unhealthy (uptime 1m30s, 2 checks) failing: listener"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTCPCheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := lis.Addr().String()

	result := TCPCheck("listener", addr, time.Second).Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy (%s)", result.Status, result.Message)
	}
	if result.Details["address"] != addr {
		t.Errorf("Details[address] = %v, want %v", result.Details["address"], addr)
	}

	lis.Close()
	result = TCPCheck("listener", addr, 200*time.Millisecond).Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v after close, want unhealthy", result.Status)
	}
}

func TestServingStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   healthpb.HealthCheckResponse_ServingStatus
	}{
		{StatusHealthy, healthpb.HealthCheckResponse_SERVING},
		{StatusDegraded, healthpb.HealthCheckResponse_SERVING},
		{StatusUnhealthy, healthpb.HealthCheckResponse_NOT_SERVING},
		{StatusUnknown, healthpb.HealthCheckResponse_UNKNOWN},
	}

	for _, tt := range tests {
		if got := ServingStatus(tt.status); got != tt.want {
			t.Errorf("ServingStatus(%v) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRegistry_Publish(t *testing.T) {
	registry := NewRegistry("textkit", "1.0.0")
	registry.RegisterFunc("broken", fixed(StatusUnhealthy))

	srv := grpchealth.NewServer()
	report := registry.Publish(context.Background(), srv, "textkit.v1.TextKitService")
	if report.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", report.Status)
	}

	for _, service := range []string{"", "textkit.v1.TextKitService"} {
		resp, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("Check(%q) error = %v", service, err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
			t.Errorf("Check(%q) = %v, want NOT_SERVING", service, resp.GetStatus())
		}
	}
}
