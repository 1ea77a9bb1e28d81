package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LambdaMetaData stored details about the current lambda context.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	lm.Context, _ = lambdacontext.FromContext(ctx)
	return lm
}

// RequestID returns the aws request id of the invocation. Outside of lambda
// (tests, local runs) a random id is generated so log lines can still be
// correlated.
func (lm LambdaMetaData) RequestID() string {
	if lm.Context != nil && lm.Context.AwsRequestID != "" {
		return lm.Context.AwsRequestID
	}

	return uuid.New().String()
}

// LogFields returns the metadata as logrus fields. Empty values are left out.
func (lm LambdaMetaData) LogFields() logrus.Fields {
	fields := logrus.Fields{"request_id": lm.RequestID()}

	add := func(k, v string) {
		if v != "" {
			fields[k] = v
		}
	}

	add("function_name", lm.FunctionName)
	add("function_version", lm.FunctionVersion)
	add("log_group", lm.LogGroupName)
	add("log_stream", lm.LogStreamName)

	if lm.Context != nil {
		add("function_arn", lm.Context.InvokedFunctionArn)
	}

	return fields
}

// LogFields is shorthand for GetLambdaMetaData(ctx).LogFields().
func LogFields(ctx context.Context) logrus.Fields {
	return GetLambdaMetaData(ctx).LogFields()
}
