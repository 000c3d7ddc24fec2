package common

// HttpResponse is the response envelope of every HTTP API.
type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}
