package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/asecurityteam/scaffold/pkg/greeter"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-chi/chi/v5"
)

const (
	// GreeterSourceStatic serves GreeterConfig.Message.
	GreeterSourceStatic = "STATIC"
	// GreeterSourceSSM serves the value of GreeterConfig.Parameter.
	GreeterSourceSSM = "SSM"
)

// GreeterConfig selects and configures the greeting service.
type GreeterConfig struct {
	Source    string `description:"Where the greeting comes from. One of STATIC or SSM."`
	Message   string `description:"Greeting served when the source is STATIC."`
	Parameter string `description:"SSM parameter holding the greeting when the source is SSM."`
	Decrypt   bool   `description:"Decrypt the SSM parameter. Required for SecureString values."`
}

// Name of the configuration root.
func (*GreeterConfig) Name() string {
	return "greeter"
}

// AppConfig is the configuration of the application module.
type AppConfig struct {
	HealthCheck string `description:"Route that always responds with a 200."`
	Greeter     *GreeterConfig
}

// Name of the configuration root.
func (*AppConfig) Name() string {
	return "app"
}

// App is the wired application: the service and the router serving it.
type App struct {
	Greeter domain.Greeter
	Router  *chi.Mux
}

// AppComponent builds an App from configuration.
type AppComponent struct {
	// SSM overrides the client used by the SSM greeter. When nil a client
	// is built from the default AWS configuration chain.
	SSM greeter.SSMAPI
}

// NewAppComponent populates an AppComponent with defaults.
func NewAppComponent() *AppComponent {
	return &AppComponent{}
}

// Settings generates a config populated with defaults.
func (*AppComponent) Settings() *AppConfig {
	return &AppConfig{
		HealthCheck: "/healthcheck",
		Greeter: &GreeterConfig{
			Source:  GreeterSourceStatic,
			Message: greeter.DefaultMessage,
		},
	}
}

// New constructs the App.
func (c *AppComponent) New(ctx context.Context, conf *AppConfig) (*App, error) {
	g, err := c.newGreeter(ctx, conf.Greeter)
	if err != nil {
		return nil, err
	}
	router := NewRouter(&RouterConfig{
		HealthCheck: conf.HealthCheck,
		Greeter:     g,
	})
	return &App{Greeter: g, Router: router}, nil
}

func (c *AppComponent) newGreeter(ctx context.Context, conf *GreeterConfig) (domain.Greeter, error) {
	if conf == nil {
		return &greeter.Static{}, nil
	}
	switch strings.ToUpper(conf.Source) {
	case GreeterSourceStatic, "":
		return &greeter.Static{Message: conf.Message}, nil
	case GreeterSourceSSM:
		if conf.Parameter == "" {
			return nil, fmt.Errorf("greeter source %s requires a parameter name", GreeterSourceSSM)
		}
		client := c.SSM
		if client == nil {
			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("load aws config: %w", err)
			}
			client = ssm.NewFromConfig(cfg)
		}
		return &greeter.SSM{Client: client, Parameter: conf.Parameter, Decrypt: conf.Decrypt}, nil
	default:
		return nil, fmt.Errorf("unknown greeter source %s", conf.Source)
	}
}
