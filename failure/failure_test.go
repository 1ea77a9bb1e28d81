package failure

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ValidationError", Validation.String())
	assert.Equal(t, "APIError", API.String())
	assert.Equal(t, "UnexpectedError", Unexpected.String())
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err      error
		expected Kind
	}{
		{ValidationError("Missing phone number in request"), Validation},
		{APIError("Missing API key"), API},
		{Wrapf(errors.New("dial tcp: refused"), API, "API request failed"), API},
		{errors.Wrap(ValidationError("Missing requestType parameter"), "outer"), Validation},
		{errors.New("boom"), Unexpected},
		{fmt.Errorf("wrapped: %w", APIError("x")), API},
		{nil, Unexpected},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, KindOf(c.err))
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Missing API key", Message(APIError("Missing API key")))
	assert.Equal(t, "Invalid requestType: put", Message(Newf(Validation, "Invalid requestType: %s", "put")))
	assert.Equal(t, "API request failed: connection refused", Message(Wrapf(errors.New("connection refused"), API, "API request failed")))
	assert.Equal(t, "outer: inner", Message(errors.Wrap(errors.New("inner"), "outer")))
	assert.Equal(t, "", Message(nil))
}

func TestWrapf_nil(t *testing.T) {
	assert.Nil(t, Wrapf(nil, API, "never"))
}

func TestError_Cause(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrapf(cause, API, "API request failed")

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, cause, e.Cause())
	assert.True(t, errors.Is(err, cause))
}

func TestNewf_stack(t *testing.T) {
	err := ValidationError("Missing requestType parameter")

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestNewf_stack")
}
