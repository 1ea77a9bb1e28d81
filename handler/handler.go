// Package handler implements the Amazon Connect contact flow handler that
// forwards a customer's phone number and custom data to the warm transfer API.
//
// Handle never returns an error to the Lambda runtime: validation and API
// failures become a 400 result, anything else a 500 result.
package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/contact"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/dispatch"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/failure"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/lambdautils"
)

// Poster sends a contact to the warm transfer API.
type Poster interface {
	Post(ctx context.Context, phoneNumber string, data interface{}) (interface{}, error)
}

// Handler handles contact flow invocations.
type Handler struct {
	client Poster
	log    logrus.FieldLogger
	router *dispatch.Router
}

// New returns a Handler that posts to client and logs to log.
func New(client Poster, log logrus.FieldLogger) *Handler {
	h := &Handler{client: client, log: log}

	h.router = &dispatch.Router{}
	h.router.POST(h.post)
	h.router.GET(h.get)

	return h
}

// Handle processes one contact flow event. The returned error is always nil;
// failures are reported through the result's status code.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (result contact.HandlerResult, err error) {
	log := h.log.WithFields(lambdautils.LogFields(ctx))

	defer func() {
		if r := recover(); r != nil {
			result = h.fail(log, errors.Errorf("panic: %v", r))
			err = nil
		}
	}()

	result, err = h.handle(ctx, log, raw)
	if err != nil {
		return h.fail(log, err), nil
	}

	return result, nil
}

func (h *Handler) handle(ctx context.Context, log logrus.FieldLogger, raw json.RawMessage) (contact.HandlerResult, error) {
	log.WithField("event", string(raw)).Info("Received event")

	event, err := contact.ParseEvent(raw)
	if err != nil {
		return contact.HandlerResult{}, err
	}

	phoneNumber, err := event.PhoneNumber()
	if err != nil {
		return contact.HandlerResult{}, err
	}
	if phoneNumber == "" {
		return contact.HandlerResult{}, failure.ValidationError("Missing phone number in request")
	}

	params, err := event.Parameters()
	if err != nil {
		return contact.HandlerResult{}, err
	}

	customData, ok := params.CustomData()
	if !ok {
		log.Warn("No custom data provided")
	}

	requestType, ok := params.RequestType()
	if !ok {
		return contact.HandlerResult{}, failure.ValidationError("Missing requestType parameter")
	}

	log = log.WithFields(logrus.Fields{
		"contact_id":   event.ContactID(),
		"request_type": requestType,
		"phone_region": contact.PhoneRegion(phoneNumber),
	})

	data, err := h.router.Route(&dispatch.RequestContext{
		Context:     ctx,
		RequestType: requestType,
		PhoneNumber: phoneNumber,
		CustomData:  customData,
	})
	if err != nil {
		return contact.HandlerResult{}, err
	}

	result := contact.Success(data, params)

	b, err := json.Marshal(result)
	if err != nil {
		return contact.HandlerResult{}, errors.Wrap(err, "failed to marshal response")
	}

	log.WithField("response", string(b)).Info("Response")
	return result, nil
}

// post forwards the contact to the warm transfer API.
func (h *Handler) post(rctx *dispatch.RequestContext) (map[string]interface{}, error) {
	apiResponse, err := h.client.Post(rctx.Context, rctx.PhoneNumber, rctx.CustomData)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"api_response": apiResponse,
		"message":      contact.MessagePostProcessed,
	}, nil
}

// get is a placeholder; it never calls the API and always succeeds.
func (h *Handler) get(*dispatch.RequestContext) (map[string]interface{}, error) {
	return map[string]interface{}{
		"message": contact.MessageGetStub,
	}, nil
}

// fail converts err into the result returned to the contact flow.
func (h *Handler) fail(log logrus.FieldLogger, err error) contact.HandlerResult {
	msg := failure.Message(err)

	switch kind := failure.KindOf(err); kind {
	case failure.Validation, failure.API:
		log.WithField("kind", kind.String()).Errorf("Validation/API error: %s", msg)
		return contact.BadRequest(msg)
	default:
		log.WithFields(logrus.Fields{
			"kind":  kind.String(),
			"stack": fmt.Sprintf("%+v", err),
		}).Errorf("Unexpected error: %s", msg)
		return contact.InternalError(msg)
	}
}
