package lambdautils

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/pkg/errors"
)

// ErrParameterNotFound is returned when the requested parameter doesn't exist.
var ErrParameterNotFound = errors.New("parameter not found")

// ParameterStore reads secrets from AWS Systems Manager Parameter Store.
// SecureString parameters are always decrypted.
type ParameterStore struct {
	Region string `json:"region"`

	svcFunc func(client.ConfigProvider) ssmiface.SSMAPI
}

// NewParameterStore returns a parameter store reader for region.
func NewParameterStore(region string) *ParameterStore {
	return &ParameterStore{Region: region}
}

// svc is used internally to assist stubs on ssm for testing
func (ps *ParameterStore) svc(p client.ConfigProvider) ssmiface.SSMAPI {
	if ps.svcFunc != nil {
		return ps.svcFunc(p)
	}

	return ssm.New(p)
}

// Get returns the decrypted value of the named parameter.
func (ps *ParameterStore) Get(name string) (string, error) {
	if name == "" {
		return "", errors.New("parameter name is required")
	}

	s, err := session.NewSession(&aws.Config{
		Region: aws.String(ps.Region),
	})

	if err != nil {
		return "", errors.Wrap(err, "failed getting session")
	}

	out, err := ps.svc(s).GetParameter(&ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})

	if err != nil {
		aerr, ok := err.(awserr.Error)
		if ok && aerr.Code() == ssm.ErrCodeParameterNotFound {
			return "", errors.Wrapf(ErrParameterNotFound, "%v", name)
		}

		return "", errors.Wrapf(err, "failed getting parameter %v", name)
	}

	if out == nil || out.Parameter == nil {
		return "", errors.Wrapf(ErrParameterNotFound, "%v", name)
	}

	return aws.StringValue(out.Parameter.Value), nil
}
