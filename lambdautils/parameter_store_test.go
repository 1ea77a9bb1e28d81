package lambdautils

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type successMockSSMClient struct {
	ssmiface.SSMAPI
	input *ssm.GetParameterInput
}

func (m *successMockSSMClient) GetParameter(input *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	m.input = input
	return &ssm.GetParameterOutput{
		Parameter: &ssm.Parameter{
			Name:  input.Name,
			Type:  aws.String(ssm.ParameterTypeSecureString),
			Value: aws.String("s3cr3t"),
		},
	}, nil
}

type notFoundMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *notFoundMockSSMClient) GetParameter(*ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return nil, awserr.New(ssm.ErrCodeParameterNotFound, "not found", errors.New("test fail"))
}

type emptyMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *emptyMockSSMClient) GetParameter(*ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return &ssm.GetParameterOutput{}, nil
}

type errorMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *errorMockSSMClient) GetParameter(*ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return nil, errors.New("test fail")
}

func TestNewParameterStore(t *testing.T) {
	ps := NewParameterStore("us-east-1")
	assert.Equal(t, "us-east-1", ps.Region)
}

func TestParameterStore_Get(t *testing.T) {
	mock := &successMockSSMClient{}
	ps := &ParameterStore{Region: "us-east-1"}
	ps.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return mock }

	value, err := ps.Get("/warm-transfer/api-key")
	assert.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)

	assert.Equal(t, "/warm-transfer/api-key", aws.StringValue(mock.input.Name))
	assert.True(t, aws.BoolValue(mock.input.WithDecryption))
}

func TestParameterStore_Get_notFound(t *testing.T) {
	ps := &ParameterStore{Region: "us-east-1"}
	ps.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &notFoundMockSSMClient{} }

	_, err := ps.Get("/warm-transfer/api-key")
	assert.Error(t, err)
	assert.Equal(t, ErrParameterNotFound, errors.Cause(err))
}

func TestParameterStore_Get_empty(t *testing.T) {
	ps := &ParameterStore{Region: "us-east-1"}
	ps.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &emptyMockSSMClient{} }

	_, err := ps.Get("/warm-transfer/api-key")
	assert.Equal(t, ErrParameterNotFound, errors.Cause(err))
}

func TestParameterStore_Get_error(t *testing.T) {
	ps := &ParameterStore{Region: "us-east-1"}
	ps.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &errorMockSSMClient{} }

	_, err := ps.Get("/warm-transfer/api-key")
	assert.Error(t, err)
	assert.NotEqual(t, ErrParameterNotFound, errors.Cause(err))
}

func TestParameterStore_Get_noName(t *testing.T) {
	ps := &ParameterStore{Region: "us-east-1"}
	ps.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &errorMockSSMClient{} }

	_, err := ps.Get("")
	assert.EqualError(t, err, "parameter name is required")
}
