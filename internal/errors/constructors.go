package errors

// NotFound reports a missing level record
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports bad caller input or configuration
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal reports a failure the caller cannot fix
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf is Internal with a formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// FailedPrecondition reports a map that cannot satisfy the level invariants
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

// FailedPreconditionf is FailedPrecondition with a formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// ResourceExhaustedf reports a spent retry budget
func ResourceExhaustedf(format string, args ...interface{}) *Error {
	return Newf(CodeResourceExhausted, format, args...)
}

// DataLoss reports a stored record that no longer reproduces its level
func DataLoss(message string) *Error { return New(CodeDataLoss, message) }

// Unimplemented reports an operation the server does not offer
func Unimplemented(message string) *Error { return New(CodeUnimplemented, message) }
