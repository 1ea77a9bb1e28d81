package dispatch

import (
	"context"
	"fmt"
)

// ActionHandler defines the function interface a route uses to execute a
// request when the route is matched. It returns the response data merged into
// the result body.
type ActionHandler func(*RequestContext) (map[string]interface{}, error)

// RequestContext contains the validated request information for a route.
type RequestContext struct {
	Context     context.Context
	RequestType string
	PhoneNumber string
	CustomData  interface{}
}

// Route pairs a RequestType with the handler executed when it matches.
type Route struct {
	Type    RequestType
	Handler ActionHandler
}

// NewRoute returns a Route for the specified request type and handler.
func NewRoute(rt RequestType, handler ActionHandler) *Route {
	return &Route{Type: rt, Handler: handler}
}

// String returns a string representation of this route.
func (route *Route) String() string {
	return fmt.Sprintf("requestType=%s", route.Type)
}

// IsMatch returns true if requestType selects this route.
func (route *Route) IsMatch(requestType string) bool {
	rt, ok := ParseRequestType(requestType)
	return ok && rt == route.Type
}

// Follow executes the route's handler.
func (route *Route) Follow(rctx *RequestContext) (map[string]interface{}, error) {
	return route.Handler(rctx)
}
