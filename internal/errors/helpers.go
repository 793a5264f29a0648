package errors

import stderrors "errors"

// As finds the first *Error in err's chain
func As(err error, target **Error) bool {
	return stderrors.As(err, target)
}

// Is forwards to the standard errors.Is so callers need one import
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func find(err error) (*Error, bool) {
	var e *Error
	if err == nil || !stderrors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of the first *Error in the chain. A nil error is
// OK and a plain error is Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the first *Error in the chain
func GetMeta(err error) map[string]interface{} {
	if e, ok := find(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the outermost message without codes or causes
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound reports a NotFound error
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports an InvalidArgument error
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsFailedPrecondition reports a FailedPrecondition error
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }

// IsResourceExhausted reports a ResourceExhausted error
func IsResourceExhausted(err error) bool { return HasCode(err, CodeResourceExhausted) }

// IsDataLoss reports a DataLoss error
func IsDataLoss(err error) bool { return HasCode(err, CodeDataLoss) }
