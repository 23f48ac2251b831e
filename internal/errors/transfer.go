package errors

var (
	ErrSelfTransfer = &DomainError{
		Kind:    KindValidation,
		Code:    "SELF_TRANSFER",
		Message: "self-transfer not allowed",
	}
	ErrMissingIdentifier = &DomainError{
		Kind:    KindValidation,
		Code:    "MISSING_IDENTIFIER",
		Message: "sender, receiver and wallet ids are required",
	}
	ErrWalletNotOwned = &DomainError{
		Kind:    KindSecurity,
		Code:    "WALLET_NOT_OWNED",
		Message: "wallet does not belong to the sender",
	}
	ErrReceiverHasNoWallet = &DomainError{
		Kind:    KindState,
		Code:    "RECEIVER_HAS_NO_WALLET",
		Message: "receiver has no wallet to receive assets",
	}
)
