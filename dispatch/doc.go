// Package dispatch routes a contact flow invocation to the action registered
// for its requestType parameter.
//
// The router is designed to be as simplistic as possible: requestType values
// are matched exactly, in the order routes were added, and anything that
// doesn't match falls through to the catch all handler.
package dispatch
