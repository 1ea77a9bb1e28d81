// Package contact models the Amazon Connect contact flow event received by the
// warm transfer function and the result it returns to the flow.
package contact

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Parameter names set on the "Invoke AWS Lambda function" block of the
// contact flow.
const (
	ParamRequestType = "requestType"
	ParamCustomData  = "customData"
)

// ContactEvent is the event Amazon Connect sends to the function.
//
// Only the envelope is decoded up front. ContactData and Parameters are read
// on demand so fields the function never looks at can't fail the request,
// and the phone number is checked before the parameters are.
type ContactEvent struct {
	Details Details `json:"Details"`
}

// Details holds the contact data and the flow parameters, undecoded.
type Details struct {
	ContactData json.RawMessage `json:"ContactData,omitempty"`
	Parameters  json.RawMessage `json:"Parameters,omitempty"`
}

// ContactData is the part of the Connect contact data the function reads.
type ContactData struct {
	CustomerEndpoint *Endpoint `json:"CustomerEndpoint"`
}

// Endpoint is a Connect routing endpoint. Only the address is used.
type Endpoint struct {
	Address string `json:"Address"`
}

// Parameters are the flow parameters as decoded JSON. The flow may pass
// structured values (customData) so they aren't restricted to strings as in
// events.ConnectDetails.
type Parameters map[string]interface{}

// ParseEvent decodes the envelope of a raw contact flow event.
func ParseEvent(raw []byte) (*ContactEvent, error) {
	event := new(ContactEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal contact event")
	}

	return event, nil
}

func absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// PhoneNumber returns the customer's address. Absent and empty are the same
// thing: both return "". An error is only returned when ContactData or the
// endpoint has the wrong shape.
func (event *ContactEvent) PhoneNumber() (string, error) {
	if absent(event.Details.ContactData) {
		return "", nil
	}

	data := new(ContactData)
	if err := json.Unmarshal(event.Details.ContactData, data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal ContactData")
	}

	if data.CustomerEndpoint == nil {
		return "", nil
	}

	return data.CustomerEndpoint.Address, nil
}

// ContactID returns the id of the contact, or "" when it can't be read. It's
// only used for logging.
func (event *ContactEvent) ContactID() string {
	if absent(event.Details.ContactData) {
		return ""
	}

	var data struct {
		ContactID string `json:"ContactId"`
	}
	_ = json.Unmarshal(event.Details.ContactData, &data)

	return data.ContactID
}

// Parameters returns the flow parameters exactly as received. A missing
// mapping is returned as an empty one.
func (event *ContactEvent) Parameters() (Parameters, error) {
	params := Parameters{}
	if absent(event.Details.Parameters) {
		return params, nil
	}

	if err := json.Unmarshal(event.Details.Parameters, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal Parameters")
	}

	if params == nil {
		params = Parameters{}
	}

	return params, nil
}

// RequestType returns the requestType parameter and whether it was set.
// Values that aren't strings are returned JSON encoded so they can be
// reported as invalid.
func (params Parameters) RequestType() (string, bool) {
	v, ok := params[ParamRequestType]
	if !ok || !truthy(v) {
		return "", false
	}

	if s, isString := v.(string); isString {
		return s, true
	}

	b, _ := json.Marshal(v)
	return string(b), true
}

// CustomData returns the customData parameter to forward to the warm transfer
// API, and whether one was provided. Falsy values count as not provided and
// give an empty mapping. A string holding a JSON object is decoded; any other
// value is returned as is.
func (params Parameters) CustomData() (interface{}, bool) {
	v, ok := params[ParamCustomData]
	if !ok || !truthy(v) {
		return map[string]interface{}{}, false
	}

	if s, isString := v.(string); isString {
		trimmed := strings.TrimSpace(s)
		if strings.HasPrefix(trimmed, "{") {
			decoded := map[string]interface{}{}
			if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
				if len(decoded) == 0 {
					return decoded, false
				}
				return decoded, true
			}
		}
	}

	return v, true
}

// truthy reports whether v would be considered set by the contact flow:
// nil, "", false, 0 and empty collections are not.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case json.Number:
		return t.String() != "0"
	case map[string]interface{}:
		return len(t) > 0
	case []interface{}:
		return len(t) > 0
	default:
		return true
	}
}
