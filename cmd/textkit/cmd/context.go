package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/textkit/client"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

// options holds the persistent flags and the state derived from them
type options struct {
	cfgFile string
	remote  bool
	addr    string
	json    bool
	verbose bool

	config *config.Config
	logger *logging.Logger
}

// load reads the configuration and builds the CLI logger
func (o *options) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadOrDefault()
	}
	if err != nil {
		return err
	}
	o.config = cfg

	level := mdwlog.LevelWarn
	if o.verbose {
		level = mdwlog.LevelDebug
	}
	o.logger = logging.Wrap(mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: mdwlog.FormatConsole,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	}), "textkit")
	return nil
}

// tokenizeRequest holds tokenizer input for either backend
type tokenizeRequest = service.TokenizeRequest

// backend runs the text operations locally or against textkitd
type backend interface {
	IsEmpty(ctx context.Context, text *string) (bool, error)
	UpperFirst(ctx context.Context, text *string, rule string) (string, error)
	LowerFirst(ctx context.Context, text *string, rule string) (string, error)
	StandardURLPatterns(ctx context.Context, urls []string) ([]string, error)
	Tokenize(ctx context.Context, req tokenizeRequest) ([]string, error)
	Close() error
}

// openBackend returns the remote client when --remote or --addr is set, else the
// in-process service
func (o *options) openBackend() (backend, error) {
	if addr := o.remoteAddress(); addr != "" {
		cfg := client.ConfigFrom(o.config.Client)
		cfg.Address = addr
		cfg.Logger = o.logger
		c, err := client.New(cfg)
		if err != nil {
			return nil, err
		}
		return remoteBackend{c}, nil
	}

	svc, err := service.NewService(service.Config{Text: o.config.Text, Logger: o.logger})
	if err != nil {
		return nil, err
	}
	return localBackend{svc}, nil
}

type localBackend struct {
	svc *service.Service
}

func (b localBackend) IsEmpty(ctx context.Context, text *string) (bool, error) {
	return b.svc.IsEmpty(ctx, text), nil
}

func (b localBackend) UpperFirst(ctx context.Context, text *string, rule string) (string, error) {
	return b.svc.UpperFirst(ctx, text, rule)
}

func (b localBackend) LowerFirst(ctx context.Context, text *string, rule string) (string, error) {
	return b.svc.LowerFirst(ctx, text, rule)
}

func (b localBackend) StandardURLPatterns(ctx context.Context, urls []string) ([]string, error) {
	return b.svc.StandardURLPatterns(ctx, urls)
}

func (b localBackend) Tokenize(ctx context.Context, req tokenizeRequest) ([]string, error) {
	return b.svc.Tokenize(ctx, req), nil
}

func (localBackend) Close() error { return nil }

type remoteBackend struct {
	*client.Client
}

func (b remoteBackend) Tokenize(ctx context.Context, req tokenizeRequest) ([]string, error) {
	return b.Client.Tokenize(ctx, client.TokenizeRequest(req))
}

// withBackend opens the backend, runs fn and closes it again
func (o *options) withBackend(cmd *cobra.Command, fn func(ctx context.Context, b backend) error) error {
	b, err := o.openBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, b)
}

var errNoInput = mdwerror.New("kein Text angegeben").WithCode(mdwerror.CodeInvalidArgument)

// readText joins args, or reads stdin when no argument is given. A single
// trailing newline from stdin is dropped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errNoInput
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// readLines returns args, or the non-blank stdin lines when no argument is
// given
func readLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	text, err := readText(cmd, nil)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
