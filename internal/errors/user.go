package errors

var (
	ErrUserNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrEmailTaken = &DomainError{
		Kind:    KindValidation,
		Code:    "EMAIL_TAKEN",
		Message: "email is already registered",
	}
	ErrInvalidEmail = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_EMAIL",
		Message: "email format is invalid",
	}
	ErrInvalidName = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_NAME",
		Message: "name must have at least 3 characters",
	}
	ErrEmptyHistoryNote = &DomainError{
		Kind:    KindValidation,
		Code:    "EMPTY_HISTORY_NOTE",
		Message: "initial history note is required",
	}
)
