package response

const (
	// DefaultErrorMessage is the generic 500 body. Upstream failure detail is
	// logged server-side and never returned to the caller.
	DefaultErrorMessage = "Failed to process task"

	// RateLimitMessage is returned when a client exceeds the request budget.
	RateLimitMessage = "Too many requests, please try again later"
)
