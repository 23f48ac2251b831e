package errors

var (
	ErrCryptocurrencyNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "CRYPTOCURRENCY_NOT_FOUND",
		Message: "cryptocurrency not found",
	}
	ErrSymbolTaken = &DomainError{
		Kind:    KindValidation,
		Code:    "SYMBOL_TAKEN",
		Message: "cryptocurrency symbol is already registered",
	}
	ErrPriceNotConfigured = &DomainError{
		Kind:    KindState,
		Code:    "PRICE_NOT_CONFIGURED",
		Message: "cryptocurrency has no configured price",
	}
)
