package contact

import "net/http"

// Response messages returned in the result body.
const (
	MessagePostProcessed   = "Successfully processed POST request"
	MessageGetStub         = "GET request not implemented"
	MessageValidationError = "Request validation or API error"
	MessageInternalError   = "Internal server error"
)

// HandlerResult is returned to the contact flow.
type HandlerResult struct {
	StatusCode int                    `json:"statusCode"`
	Body       map[string]interface{} `json:"body"`
}

// Success builds a 200 result from the response data, adding the original
// flow parameters under "parameters".
func Success(data map[string]interface{}, parameters map[string]interface{}) HandlerResult {
	body := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	body["parameters"] = parameters

	return HandlerResult{StatusCode: http.StatusOK, Body: body}
}

// BadRequest builds the 400 result for validation and API failures.
func BadRequest(msg string) HandlerResult {
	return HandlerResult{
		StatusCode: http.StatusBadRequest,
		Body: map[string]interface{}{
			"message": MessageValidationError,
			"error":   msg,
		},
	}
}

// InternalError builds the 500 result for anything unexpected.
func InternalError(msg string) HandlerResult {
	return HandlerResult{
		StatusCode: http.StatusInternalServerError,
		Body: map[string]interface{}{
			"message": MessageInternalError,
			"error":   msg,
		},
	}
}
