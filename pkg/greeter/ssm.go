package greeter

import (
	"context"
	"errors"
	"sync"

	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMAPI is the subset of the SSM client used to read parameters.
type SSMAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSM serves a greeting stored in SSM Parameter Store. The parameter is
// read on first use and kept for the life of the execution environment.
// Failed reads are not kept so the next request tries again.
type SSM struct {
	Client    SSMAPI
	Parameter string
	// Decrypt is set when the parameter is a SecureString.
	Decrypt bool

	mu      sync.Mutex
	message *string
}

// Greeting returns the cached parameter value, fetching it if needed.
func (g *SSM) Greeting(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.message != nil {
		return *g.message, nil
	}
	out, err := g.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(g.Parameter),
		WithDecryption: aws.Bool(g.Decrypt),
	})
	if err != nil {
		return "", domain.ParameterError{Name: g.Parameter, Reason: err}
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", domain.ParameterError{Name: g.Parameter, Reason: errors.New("parameter has no value")}
	}
	msg := aws.ToString(out.Parameter.Value)
	g.message = &msg
	return msg, nil
}
