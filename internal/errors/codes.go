package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationRequiredField  ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat  ErrorCode = "VALIDATION_003"
	ValidationOutOfRange     ErrorCode = "VALIDATION_004"
	ValidationInvalidID      ErrorCode = "VALIDATION_005"
	ValidationInvalidJSON    ErrorCode = "VALIDATION_006"
	ValidationInvalidDecimal ErrorCode = "VALIDATION_007"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidOrder  ErrorCode = "BUDGET_002"
	BudgetInvalidAmount ErrorCode = "BUDGET_003"
	BudgetNameRequired  ErrorCode = "BUDGET_004"
)

// Period error codes (PERIOD_*)
const (
	PeriodInvalid          ErrorCode = "PERIOD_001"
	PeriodInvalidMonth     ErrorCode = "PERIOD_002"
	PeriodInvalidLastN     ErrorCode = "PERIOD_003"
	PeriodInvalidDirection ErrorCode = "PERIOD_004"
)

// Exchange rate error codes (RATE_*)
const (
	RateInvalid           ErrorCode = "RATE_001"
	RateSameCurrency      ErrorCode = "RATE_002"
	RateInvalidCurrency   ErrorCode = "RATE_003"
	RateSourceUnavailable ErrorCode = "RATE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
	SystemRequestCancelled   ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:        "Validation failed",
	ValidationRequiredField:  "Required field is missing",
	ValidationInvalidFormat:  "Invalid field format",
	ValidationOutOfRange:     "Field value is out of allowed range",
	ValidationInvalidID:      "Invalid identifier format",
	ValidationInvalidJSON:    "Request body is not valid JSON",
	ValidationInvalidDecimal: "Invalid decimal amount",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidOrder:  "Budget order must list every budget exactly once",
	BudgetInvalidAmount: "Budget amount cannot be negative",
	BudgetNameRequired:  "Budget name is required",

	// Period errors
	PeriodInvalid:          "Period must be exactly one of month, year or last N",
	PeriodInvalidMonth:     "Month must be between 1 and 12",
	PeriodInvalidLastN:     "Last N period needs a positive count and a unit of day, week, month or year",
	PeriodInvalidDirection: "Direction must be next or previous",

	// Exchange rate errors
	RateInvalid:           "Exchange rate must be positive",
	RateSameCurrency:      "Exchange rate needs two different currencies",
	RateInvalidCurrency:   "Currency code must be three uppercase letters",
	RateSourceUnavailable: "Exchange rate source is temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
	SystemRequestCancelled:   "Request was cancelled",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
