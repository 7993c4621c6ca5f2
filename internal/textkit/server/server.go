package server

import (
	"context"
	"fmt"
	"net"
	"time"

	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/msto63/textkit/api/textkit"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/pkg/core/config"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/health"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/msto63/textkit/pkg/core/version"
)

// Server is the TextKit gRPC server
type Server struct {
	pb.UnimplementedTextKitServiceServer
	service      *service.Service
	grpc         *coreGrpc.Server
	health       *health.Registry
	healthServer *grpchealth.Server
	logger       *logging.Logger
	config       config.ServerConfig
	startTime    time.Time
}

// New creates a new TextKit server from cfg. A nil logger means a logger
// built from cfg.General.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Wrap(logging.FromConfig(cfg.General), "textkit-server")
	}

	// Create service
	svc, err := service.NewService(service.Config{
		Text:   cfg.Text,
		Logger: logger,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create service").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	// Create gRPC server
	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Server.Host
	grpcCfg.Port = cfg.Server.Port
	grpcCfg.EnableReflection = cfg.Server.EnableReflection
	if cfg.Server.KeepaliveInterval.Duration > 0 {
		grpcCfg.KeepaliveInterval = cfg.Server.KeepaliveInterval.Duration
	}
	if cfg.Server.KeepaliveTimeout.Duration > 0 {
		grpcCfg.KeepaliveTimeout = cfg.Server.KeepaliveTimeout.Duration
	}
	grpcCfg.Logger = logger

	grpcServer := coreGrpc.NewServer(grpcCfg)

	// Create health registry
	healthRegistry := health.NewRegistry("textkit", version.ServiceVersion("textkitd"))
	healthRegistry.Register(selfTest())

	server := &Server{
		service:      svc,
		grpc:         grpcServer,
		health:       healthRegistry,
		healthServer: grpchealth.NewServer(),
		logger:       logger,
		config:       cfg.Server,
		startTime:    time.Now(),
	}

	// Register gRPC services
	pb.RegisterTextKitServiceServer(grpcServer.GRPCServer(), server)
	healthpb.RegisterHealthServer(grpcServer.GRPCServer(), server.healthServer)

	return server, nil
}

// selfTest runs the helpers against known answers
func selfTest() health.Checker {
	return health.ProbeCheck("stringx", func(ctx context.Context) error {
		if got := stringx.UpperFirst("i"); got != "I" {
			return fmt.Errorf("UpperFirst(\"i\") = %q", got)
		}
		if got := stringx.StandardURLPattern("/test.do"); got != "test.do" {
			return fmt.Errorf("StandardURLPattern(\"/test.do\") = %q", got)
		}
		if got := stringx.TokenizeToStringArray(" a, ,b ", ","); len(got) != 2 || got[0] != "a" || got[1] != "b" {
			return fmt.Errorf("TokenizeToStringArray = %q", got)
		}
		return nil
	})
}

// Start publishes the health status and serves until stopped
func (s *Server) Start() error {
	s.RefreshHealth(context.Background())
	s.logger.Info("Starting TextKit server", "address", s.grpc.Address())
	return s.grpc.Start()
}

// StartAsync starts serving in the background
func (s *Server) StartAsync() error {
	s.RefreshHealth(context.Background())
	s.logger.Info("Starting TextKit server", "address", s.grpc.Address())
	return s.grpc.StartAsync()
}

// Serve serves on an existing listener
func (s *Server) Serve(lis net.Listener) error {
	s.RefreshHealth(context.Background())
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and shuts down gracefully until ctx
// is done
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping TextKit server", "uptime", time.Since(s.startTime).Round(time.Second))
	s.healthServer.Shutdown()
	s.grpc.StopWithTimeout(ctx)
}

// RefreshHealth runs the health checks and publishes the result on the
// gRPC health service
func (s *Server) RefreshHealth(ctx context.Context) *health.Report {
	report := s.health.Publish(ctx, s.healthServer, pb.ServiceName)
	if report.Status != health.StatusHealthy {
		s.logger.Warn("Health check not healthy", "status", report.Status)
	}
	return report
}

// HealthRegistry returns the health registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// IsEmpty implements TextKitServiceServer
func (s *Server) IsEmpty(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.TextRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}
	return (&pb.BoolResponse{Value: s.service.IsEmpty(ctx, req.Text)}).ToStruct(), nil
}

// UpperFirst implements TextKitServiceServer
func (s *Server) UpperFirst(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return s.mapFirst(ctx, in, s.service.UpperFirst)
}

// LowerFirst implements TextKitServiceServer
func (s *Server) LowerFirst(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return s.mapFirst(ctx, in, s.service.LowerFirst)
}

func (s *Server) mapFirst(ctx context.Context, in *structpb.Struct, fn func(context.Context, *string, string) (string, error)) (*structpb.Struct, error) {
	req, err := pb.TextRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}

	result, err := fn(ctx, req.Text, stringx.OrEmpty(req.CaseRule))
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}
	return (&pb.TextResponse{Text: result}).ToStruct(), nil
}

// StandardURLPattern implements TextKitServiceServer
func (s *Server) StandardURLPattern(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.URLPatternRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}

	result, err := s.service.StandardURLPattern(ctx, req.URL)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}
	return (&pb.TextResponse{Text: result}).ToStruct(), nil
}

// StandardURLPatterns implements TextKitServiceServer
func (s *Server) StandardURLPatterns(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.URLPatternsRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}

	results, err := s.service.StandardURLPatterns(ctx, req.List())
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}
	return pb.NewListResponse(results).ToStruct(), nil
}

// Tokenize implements TextKitServiceServer
func (s *Server) Tokenize(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.TokenizeRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}

	tokens := s.service.Tokenize(ctx, service.TokenizeRequest{
		Text:              req.Text,
		Delimiters:        req.Delimiters,
		TrimTokens:        req.TrimTokens,
		IgnoreEmptyTokens: req.IgnoreEmptyTokens,
	})
	return pb.NewListResponse(tokens).ToStruct(), nil
}

// ToStringArray implements TextKitServiceServer
func (s *Server) ToStringArray(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.ListRequestFromStruct(in)
	if err != nil {
		return nil, coreGrpc.StatusFromError(err)
	}
	return pb.NewListResponse(s.service.ToStringArray(ctx, req.List())).ToStruct(), nil
}
