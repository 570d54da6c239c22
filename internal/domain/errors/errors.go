package errors

import (
	"net/http"

	"packline/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Bundle-related errors
	ErrBundleNotFound = NewBaseError(
		http.StatusNotFound,
		"BUNDLE_NOT_FOUND",
		"找不到該捆包",
		"",
	)

	ErrBundleNotAssembling = NewBaseError(
		http.StatusConflict,
		"BUNDLE_NOT_ASSEMBLING",
		"捆包已完成或售出，無法再掃描",
		"",
	)

	ErrBundleNotCompleted = NewBaseError(
		http.StatusConflict,
		"BUNDLE_NOT_COMPLETED",
		"捆包尚未完成組裝，無法出貨",
		"",
	)

	ErrInvalidPackConfig = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PACK_CONFIG",
		"目標數量必須為包裝數的整數倍",
		"",
	)

	ErrBundleCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUNDLE_CREATION_FAILED",
		"建立捆包失敗",
		"",
	)

	// Unit-related errors
	ErrUnitNotFound = NewBaseError(
		http.StatusNotFound,
		"UNIT_NOT_FOUND",
		"找不到該單品",
		"",
	)

	ErrUnitAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"UNIT_ALREADY_ASSIGNED",
		"該單品已被指派至其他捆包",
		"",
	)

	ErrWrongProduct = NewBaseError(
		http.StatusConflict,
		"WRONG_PRODUCT",
		"單品與捆包的商品設定不符",
		"",
	)

	ErrDuplicateQRCode = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_QR_CODE",
		"此 QR 條碼已被註冊",
		"",
	)

	ErrUnitCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"UNIT_CREATION_FAILED",
		"登錄單品失敗",
		"",
	)

	ErrInvalidQRPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_PAYLOAD",
		"無法解析的 QR 內容",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
