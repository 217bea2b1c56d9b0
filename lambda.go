package scaffold

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/scaffold/pkg/cloudwatchstat"
	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/asecurityteam/settings/v2"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

const (
	// OutputStdout writes log events to standard output.
	OutputStdout = "STDOUT"
	// OutputNull discards logs or stats.
	OutputNull = "NULL"
	// OutputCloudWatch publishes stats with CloudWatch PutMetricData.
	OutputCloudWatch = "CLOUDWATCH"
)

// LoggerConfig configures logging in lambda mode.
type LoggerConfig struct {
	Level  string `description:"The minimum level of logs to emit. One of DEBUG, INFO, WARN, ERROR."`
	Output string `description:"Destination stream of the logs. One of STDOUT, NULL."`
}

// Name of the configuration root.
func (*LoggerConfig) Name() string {
	return "logger"
}

// StatsConfig configures metrics in lambda mode.
type StatsConfig struct {
	Output    string `description:"Destination of the metrics. One of NULL, CLOUDWATCH."`
	Namespace string `description:"CloudWatch namespace of the published metrics."`
}

// Name of the configuration root.
func (*StatsConfig) Name() string {
	return "stats"
}

// LambdaConfig is the configuration of the lambda mode runtime.
type LambdaConfig struct {
	Logger *LoggerConfig
	Stats  *StatsConfig
}

// Name of the configuration root.
func (*LambdaConfig) Name() string {
	return "lambda"
}

// LambdaComponent builds a LambdaRuntime. The App itself is not built
// here. It is bootstrapped from Source by the first invocation.
type LambdaComponent struct {
	// Source is read again when the App is bootstrapped.
	Source settings.Source
	// App builds the application. Defaults to NewAppComponent().
	App *AppComponent
	// CloudWatch overrides the metrics client. When nil a client is built
	// from the default AWS configuration chain.
	CloudWatch cloudwatchstat.PutMetricDataAPI
}

// NewLambdaComponent populates a LambdaComponent with defaults.
func NewLambdaComponent(source settings.Source) *LambdaComponent {
	return &LambdaComponent{Source: source, App: NewAppComponent()}
}

// Settings generates a config populated with defaults.
func (*LambdaComponent) Settings() *LambdaConfig {
	return &LambdaConfig{
		Logger: &LoggerConfig{Level: "INFO", Output: OutputStdout},
		Stats:  &StatsConfig{Output: OutputNull, Namespace: "scaffold"},
	}
}

// New constructs a LambdaRuntime.
func (c *LambdaComponent) New(ctx context.Context, conf *LambdaConfig) (*LambdaRuntime, error) {
	logger, err := newLogger(conf.Logger)
	if err != nil {
		return nil, err
	}
	stat, flusher, err := c.newStat(ctx, conf.Stats)
	if err != nil {
		return nil, err
	}
	app := c.App
	if app == nil {
		app = NewAppComponent()
	}
	source := c.Source
	handler := &Handler{
		Bootstrap: func(ctx context.Context) (http.Handler, error) {
			a := new(App)
			err := settings.NewComponent(ctx, prefixed(source), app, a)
			if err != nil {
				return nil, err
			}
			return a.Router, nil
		},
	}
	return &LambdaRuntime{
		Handler: handler,
		Logger:  logger,
		Stat:    stat,
		Flusher: flusher,
	}, nil
}

func newLogger(conf *LoggerConfig) (domain.Logger, error) {
	var out io.Writer
	switch strings.ToUpper(conf.Output) {
	case OutputStdout, "":
		out = os.Stdout
	case OutputNull:
		out = io.Discard
	default:
		return nil, fmt.Errorf("unknown logger output %s", conf.Output)
	}
	return logevent.New(logevent.Config{Level: conf.Level, Output: out}), nil
}

func (c *LambdaComponent) newStat(ctx context.Context, conf *StatsConfig) (domain.Stat, Flusher, error) {
	switch strings.ToUpper(conf.Output) {
	case OutputNull, "":
		// xstats hands out a no-op client when the context has none.
		return xstats.FromContext(ctx), nil, nil
	case OutputCloudWatch:
		client := c.CloudWatch
		if client == nil {
			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("load aws config: %w", err)
			}
			client = cloudwatch.NewFromConfig(cfg)
		}
		sender := &cloudwatchstat.Sender{Client: client, Namespace: conf.Namespace}
		return xstats.New(sender), sender, nil
	default:
		return nil, nil, fmt.Errorf("unknown stats output %s", conf.Output)
	}
}

// LambdaRuntime hands the gateway Handler to the Lambda runtime with the
// logger and stat client bound to every invocation.
type LambdaRuntime struct {
	Handler *Handler
	Logger  domain.Logger
	Stat    domain.Stat
	Flusher Flusher
}

// Function returns the decorated lambda.Handler that Run starts.
func (r *LambdaRuntime) Function() lambda.Handler {
	fn := &statFunction{
		Handler: lambda.NewHandler(r.Handler.Invoke),
		Stat:    r.Stat,
		Flusher: r.Flusher,
		LogFn:   runhttp.LoggerFromContext,
	}
	return &loggingFunction{Handler: fn, Logger: r.Logger}
}

// Run blocks serving invocations. The Lambda runtime exits the process
// itself so Run only returns when LambdaStartFn is replaced.
func (r *LambdaRuntime) Run() error {
	LambdaStartFn(r.Function())
	return nil
}
