package types

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON body returned for requests without a payload
type SuccessResponse struct {
	Message string `json:"message"`
}
