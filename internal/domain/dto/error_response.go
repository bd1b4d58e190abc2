package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"The crypto code BTX is not supported"`
	ErrorDetails string    `json:"error_details,omitempty" example:"record code \"ETH\" does not match \"BTC\""`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// When err is non-nil its text is reported as ErrorDetails.
func NewErrorResponse(msg string, err error) ErrorResponse {
	r := ErrorResponse{Message: msg, Timestamp: time.Now().UTC()}
	if err != nil {
		r.ErrorDetails = err.Error()
	}
	return r
}
