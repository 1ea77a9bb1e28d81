package dispatch

import (
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/failure"
)

// Router sends a RequestContext to the route registered for its request type.
//
// Routes are checked in the order they were added. A request that doesn't
// match any route gets an "Invalid requestType" validation error.
//
// Example:
//
//	router := &dispatch.Router{}
//	router.POST(postHandler)
//	router.GET(func(*dispatch.RequestContext) (map[string]interface{}, error) {
//		return map[string]interface{}{"message": "GET request not implemented"}, nil
//	})
//
//	data, err := router.Route(rctx)
type Router struct {
	Routes []*Route
}

// AddRoute appends route to the list of routes used for request matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// POST adds a route for requestType "post".
func (router *Router) POST(handler ActionHandler) {
	router.AddRoute(NewRoute(POST, handler))
}

// GET adds a route for requestType "get".
func (router *Router) GET(handler ActionHandler) {
	router.AddRoute(NewRoute(GET, handler))
}

// Route executes the first route matching rctx.RequestType.
//
// If no route matches a validation error naming the request type is returned.
func (router *Router) Route(rctx *RequestContext) (map[string]interface{}, error) {
	for _, route := range router.Routes {
		if !route.IsMatch(rctx.RequestType) {
			continue
		}

		return route.Follow(rctx)
	}

	return nil, failure.Newf(failure.Validation, "Invalid requestType: %s", rctx.RequestType)
}
