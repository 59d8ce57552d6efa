package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrEmailTaken         = errors.New("EMAIL_TAKEN")
	ErrForbidden          = errors.New("FORBIDDEN")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidRole        = errors.New("INVALID_ROLE")
	ErrInvalidBudget      = errors.New("INVALID_BUDGET")
	ErrInvalidDateRange   = errors.New("INVALID_DATE_RANGE")
	ErrInvalidTransition  = errors.New("INVALID_STATUS_TRANSITION")
	ErrInvalidListType    = errors.New("INVALID_LIST_TYPE")
	ErrInvalidEntryType   = errors.New("INVALID_ENTRY_TYPE")
	ErrInvalidCapType     = errors.New("INVALID_CAP_TYPE")
	ErrInvalidDealType    = errors.New("INVALID_DEAL_TYPE")
	ErrInvalidCommission  = errors.New("INVALID_COMMISSION_TYPE")
	ErrInvalidEnumValue   = errors.New("INVALID_ENUM_VALUE")
	ErrInvalidCurrency    = errors.New("INVALID_CURRENCY")
	ErrInvalidPercentage  = errors.New("INVALID_PERCENTAGE")
	ErrRelationshipExists = errors.New("RELATIONSHIP_EXISTS")
	ErrTooManyEntries     = errors.New("TOO_MANY_ENTRIES")
	ErrStrategyFailed     = errors.New("STRATEGY_GENERATION_FAILED")
)
