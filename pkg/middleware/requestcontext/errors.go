package requestcontext

var _ error = requestcontextError{}

// requestcontextError rejects a request with a status and a message safe for the client.
type requestcontextError struct {
	status  int
	message string
}

func (r requestcontextError) Error() string {
	return r.message
}
