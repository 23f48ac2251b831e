package errors

var (
	ErrWalletNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrInvalidAmount = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_AMOUNT",
		Message: "amount must be positive",
	}
	ErrNegativeBalance = &DomainError{
		Kind:    KindValidation,
		Code:    "NEGATIVE_BALANCE",
		Message: "initial balance cannot be negative",
	}
	ErrInsufficientBalance = &DomainError{
		Kind:    KindValidation,
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrAssetNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "ASSET_NOT_FOUND",
		Message: "asset not found",
	}
	ErrAssetNotHeld = &DomainError{
		Kind:    KindValidation,
		Code:    "ASSET_NOT_HELD",
		Message: "wallet does not hold this asset",
	}
	ErrDuplicateAsset = &DomainError{
		Kind:    KindValidation,
		Code:    "DUPLICATE_ASSET",
		Message: "wallet already holds this cryptocurrency",
	}
)
