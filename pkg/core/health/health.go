package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"
)

// Status represents the health status of a service
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

func (s Status) rank() int {
	switch s {
	case StatusUnhealthy:
		return 3
	case StatusDegraded:
		return 2
	case StatusHealthy:
		return 1
	default:
		return 0
	}
}

// CheckResult represents the result of a health check
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Checker is an interface for health checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type funcChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

func (c *funcChecker) Name() string                          { return c.name }
func (c *funcChecker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &funcChecker{name: name, fn: fn}
}

// ProbeCheck creates a checker that is healthy when probe returns nil and
// unhealthy with the error text otherwise
func ProbeCheck(name string, probe func(ctx context.Context) error) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if err := probe(ctx); err != nil {
			return CheckResult{Name: name, Status: StatusUnhealthy, Message: err.Error()}
		}
		return CheckResult{Name: name, Status: StatusHealthy, Message: "ok"}
	})
}

// DefaultCheckTimeout bounds a single check run by Registry.Check
const DefaultCheckTimeout = 5 * time.Second

// Registry manages multiple health checkers
type Registry struct {
	mu           sync.RWMutex
	checkers     map[string]Checker
	service      string
	version      string
	startAt      time.Time
	checkTimeout time.Duration
}

// NewRegistry creates a new health check registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers:     make(map[string]Checker),
		service:      service,
		version:      version,
		startAt:      time.Now(),
		checkTimeout: DefaultCheckTimeout,
	}
}

// SetCheckTimeout changes the per-check timeout; zero disables it
func (r *Registry) SetCheckTimeout(timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkTimeout = timeout
}

// Register adds a checker to the registry, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function to the registry
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Unregister removes a checker from the registry
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, name)
}

// Check runs all checks concurrently. The overall status is the worst
// individual status, healthy when no checks are registered. Results are
// ordered by name. A check that panics or outlives the per-check timeout
// counts as unhealthy.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	timeout := r.checkTimeout
	r.mu.RUnlock()

	results := make(chan CheckResult, len(checkers))
	var wg sync.WaitGroup
	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			results <- runCheck(ctx, c, timeout)
		}(checker)
	}
	wg.Wait()
	close(results)

	report := &Report{
		Service:   r.service,
		Version:   r.version,
		Status:    StatusHealthy,
		Uptime:    time.Since(r.startAt),
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, 0, len(checkers)),
	}
	for result := range results {
		report.Checks = append(report.Checks, result)
		if result.Status.rank() > report.Status.rank() {
			report.Status = result.Status
		}
	}
	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})

	return report
}

// runCheck returns within timeout even when c ignores ctx. The check's
// goroutine is left to finish on its own.
func runCheck(ctx context.Context, c Checker, timeout time.Duration) CheckResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan CheckResult, 1)
	go func() {
		var result CheckResult
		defer func() {
			if rec := recover(); rec != nil {
				result = CheckResult{
					Status:  StatusUnhealthy,
					Message: fmt.Sprintf("check panicked: %v", rec),
				}
			}
			done <- result
		}()
		result = c.Check(ctx)
	}()

	var result CheckResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result = CheckResult{Status: StatusUnhealthy, Message: ctx.Err().Error()}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.Message = fmt.Sprintf("check timed out after %v", time.Since(start).Truncate(time.Millisecond))
		}
	}

	if result.Name == "" {
		result.Name = c.Name()
	}
	result.Duration = time.Since(start)
	result.Timestamp = time.Now()
	return result
}

// CheckWithTimeout runs all health checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report represents the overall health report
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// Healthy reports whether every check passed
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Failing returns the checks that are not healthy
func (r *Report) Failing() []CheckResult {
	var failing []CheckResult
	for _, c := range r.Checks {
		if c.Status != StatusHealthy {
			failing = append(failing, c)
		}
	}
	return failing
}

// String returns a one line summary naming failing checks
func (r *Report) String() string {
	s := fmt.Sprintf("%s %s: %s (uptime %v, %d checks)",
		r.Service, r.Version, r.Status, r.Uptime.Truncate(time.Second), len(r.Checks))

	if failing := r.Failing(); len(failing) > 0 {
		names := make([]string, len(failing))
		for i, c := range failing {
			names[i] = c.Name
		}
		s += " failing: " + strings.Join(names, ", ")
	}
	return s
}

// TCPCheck reports unhealthy when address does not accept a TCP connection
// within timeout
func TCPCheck(name, address string, timeout time.Duration) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{
			Name:    name,
			Status:  StatusHealthy,
			Message: "accepting connections",
			Details: map[string]interface{}{"address": address},
		}

		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.DialContext(ctx, "tcp", address)
		if err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			return result
		}
		_ = conn.Close()
		return result
	})
}

// AlwaysHealthy returns a checker that always reports healthy
func AlwaysHealthy(name string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		return CheckResult{Name: name, Status: StatusHealthy}
	})
}
