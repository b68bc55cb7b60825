package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Matching error codes (MATCH_*)
const (
	MatchIndicesNotBuilt ErrorCode = "MATCH_001"
	MatchUnknownType     ErrorCode = "MATCH_002"
	MatchBatchTooLarge   ErrorCode = "MATCH_003"
)

// Ingredient error codes (INGREDIENT_*)
const (
	IngredientNotFound    ErrorCode = "INGREDIENT_001"
	IngredientInvalidType ErrorCode = "INGREDIENT_002"
	IngredientInvalidID   ErrorCode = "INGREDIENT_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Matching errors
	MatchIndicesNotBuilt: "Matching indices have not been built; run a batch match first",
	MatchUnknownType:     "Unknown ingredient type",
	MatchBatchTooLarge:   "Match batch exceeds the maximum allowed size",

	// Ingredient errors
	IngredientNotFound:    "Ingredient not found",
	IngredientInvalidType: "Invalid ingredient type",
	IngredientInvalidID:   "Invalid ingredient ID format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
