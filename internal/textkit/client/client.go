// Package client provides a typed client for the TextKit gRPC service.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/msto63/textkit/api/textkit"
	"github.com/msto63/textkit/pkg/core/config"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/logging"
)

// TokenizeRequest holds tokenizer input; nil options take the server
// defaults
type TokenizeRequest struct {
	Text              *string
	Delimiters        *string
	TrimTokens        *bool
	IgnoreEmptyTokens *bool
}

// Client calls a remote TextKit service. Call errors carry the mdwerror
// code the server reported.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.TextKitServiceClient
	timeout time.Duration
	logger  *logging.Logger
}

// Config holds client configuration
type Config struct {
	Address string
	Timeout time.Duration
	Logger  *logging.Logger
}

// ConfigFrom builds a client configuration from the [client] section
func ConfigFrom(cfg config.ClientConfig) Config {
	return Config{
		Address: cfg.Address,
		Timeout: cfg.Timeout.Duration,
	}
}

// New dials the service at cfg.Address
func New(cfg Config, opts ...grpc.DialOption) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("textkit-client")
	}

	grpcCfg := coreGrpc.DefaultClientConfig(cfg.Address)
	grpcCfg.Logger = logger
	if cfg.Timeout > 0 {
		grpcCfg.Timeout = cfg.Timeout
	}

	conn, err := coreGrpc.Dial(grpcCfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:    conn,
		client:  pb.NewTextKitServiceClient(conn),
		timeout: grpcCfg.Timeout,
		logger:  logger,
	}, nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// call applies the per-call timeout and maps the status back to a coded error
func (c *Client) call(ctx context.Context, fn func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error), in *structpb.Struct) (*structpb.Struct, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := fn(ctx, in)
	if err != nil {
		if coded := coreGrpc.ErrorFromStatus(err); coded != nil {
			return nil, coded
		}
		return nil, err
	}
	return out, nil
}

// IsEmpty reports whether text is absent, empty or whitespace only
func (c *Client) IsEmpty(ctx context.Context, text *string) (bool, error) {
	out, err := c.call(ctx, c.client.IsEmpty, (&pb.TextRequest{Text: text}).ToStruct())
	if err != nil {
		return false, err
	}
	resp, err := pb.BoolResponseFromStruct(out)
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

// UpperFirst upper-cases the first rune of text. An empty rule name selects
// the server default.
func (c *Client) UpperFirst(ctx context.Context, text *string, rule string) (string, error) {
	return c.text(ctx, c.client.UpperFirst, &pb.TextRequest{Text: text, CaseRule: ruleName(rule)})
}

// LowerFirst lower-cases the first rune of text. An empty rule name selects
// the server default.
func (c *Client) LowerFirst(ctx context.Context, text *string, rule string) (string, error) {
	return c.text(ctx, c.client.LowerFirst, &pb.TextRequest{Text: text, CaseRule: ruleName(rule)})
}

// StandardURLPattern strips one leading "/" from url
func (c *Client) StandardURLPattern(ctx context.Context, url *string) (string, error) {
	out, err := c.call(ctx, c.client.StandardURLPattern, (&pb.URLPatternRequest{URL: url}).ToStruct())
	if err != nil {
		return "", err
	}
	resp, err := pb.TextResponseFromStruct(out)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// StandardURLPatterns strips one leading "/" from every url
func (c *Client) StandardURLPatterns(ctx context.Context, urls []string) ([]string, error) {
	return c.list(ctx, c.client.StandardURLPatterns, pb.NewURLPatternsRequest(urls).ToStruct())
}

// Tokenize splits text on the server. A nil text yields nil.
func (c *Client) Tokenize(ctx context.Context, req TokenizeRequest) ([]string, error) {
	in := (&pb.TokenizeRequest{
		Text:              req.Text,
		Delimiters:        req.Delimiters,
		TrimTokens:        req.TrimTokens,
		IgnoreEmptyTokens: req.IgnoreEmptyTokens,
	}).ToStruct()
	return c.list(ctx, c.client.Tokenize, in)
}

// ToStringArray copies values on the server. A nil slice yields nil.
func (c *Client) ToStringArray(ctx context.Context, values []string) ([]string, error) {
	return c.list(ctx, c.client.ToStringArray, pb.NewListRequest(values).ToStruct())
}

func (c *Client) text(ctx context.Context, fn func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error), req *pb.TextRequest) (string, error) {
	out, err := c.call(ctx, fn, req.ToStruct())
	if err != nil {
		return "", err
	}
	resp, err := pb.TextResponseFromStruct(out)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *Client) list(ctx context.Context, fn func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error), in *structpb.Struct) ([]string, error) {
	out, err := c.call(ctx, fn, in)
	if err != nil {
		return nil, err
	}
	resp, err := pb.ListResponseFromStruct(out)
	if err != nil {
		return nil, err
	}
	return resp.List(), nil
}

func ruleName(rule string) *string {
	if rule == "" {
		return nil
	}
	return &rule
}
