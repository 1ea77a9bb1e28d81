package dispatch

// RequestType is an enum of the requestType values a contact flow can send.
type RequestType int

const (
	POST RequestType = iota
	GET
)

var requestTypeNames = map[RequestType]string{
	POST: "post",
	GET:  "get",
}

// String returns the wire value of the request type, as set in the flow.
func (rt RequestType) String() string {
	if name, ok := requestTypeNames[rt]; ok {
		return name
	}

	return "unknown"
}

// ParseRequestType returns the RequestType for s. Matching is exact and case
// sensitive.
func ParseRequestType(s string) (RequestType, bool) {
	for rt, name := range requestTypeNames {
		if name == s {
			return rt, true
		}
	}

	return 0, false
}
