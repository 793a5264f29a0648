package errors

import "google.golang.org/grpc/codes"

// Code classifies an error. Each code has a gRPC counterpart.
type Code string

// Codes used by the level service
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(toGRPC))
	for code, grpcCode := range toGRPC {
		m[grpcCode] = code
	}
	return m
}()

// String returns the code name
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code for c, Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if grpcCode, ok := toGRPC[c]; ok {
		return grpcCode
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back, Internal for unmapped codes
func codeFromGRPC(grpcCode codes.Code) Code {
	if code, ok := fromGRPC[grpcCode]; ok {
		return code
	}
	return CodeInternal
}
