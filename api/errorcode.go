package api

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: "help request not found",
		1201: "operation not allowed for this account",
		1202: "request state does not allow this operation",
		1203: "request was changed by a concurrent call",
		1204: "authentication required",

		1210: "too many requests",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotFound    = errorJSON(1200)
	errorNotAllowed         = errorJSON(1201)
	errorIllegalTransition  = errorJSON(1202)
	errorConcurrentConflict = errorJSON(1203)
	errorUnauthenticated    = errorJSON(1204)

	errorTooManyRequests = errorJSON(1210)
)

type ErrorResponse struct {
	Code       int64  `json:"code"`
	Message    string `json:"message"`
	RetryAfter int64  `json:"retry_after,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorWithMessage keeps the numeric code but carries the specific
// reason, for classes where the caller needs it (validation, business
// rules).
func errorWithMessage(base ErrorResponse, message string) ErrorResponse {
	base.Message = message
	return base
}
