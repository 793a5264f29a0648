package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "level not found",
			expected: "NOT_FOUND: level not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no floor tiles",
			expected: "FAILED_PRECONDITION: no floor tiles",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("level not found").
		WithMeta("level_id", "level_123").
		WithMeta("seed", int64(42))

	s.Assert().Equal("level_123", err.Meta["level_id"])
	s.Assert().Equal(int64(42), err.Meta["seed"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to record level")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to record level", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "level not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("level not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsSentinelReachable() {
	sentinel := stderrors.New("ungeneratable map")
	wrapped := errors.WrapWithCode(sentinel, errors.CodeFailedPrecondition, "no floor tiles")
	outer := errors.WrapWithCodef(wrapped, errors.CodeResourceExhausted, "failed after %d attempts", 3)

	s.Assert().Equal(errors.CodeResourceExhausted, outer.Code)
	s.Assert().True(errors.Is(outer, sentinel))
	s.Assert().True(errors.IsResourceExhausted(outer))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"DataLoss", func() *errors.Error { return errors.DataLoss("test") }, errors.CodeDataLoss},
		{"Unimplemented", func() *errors.Error { return errors.Unimplemented("test") }, errors.CodeUnimplemented},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.NotFound("level not found").
		WithMeta("level_id", "level_123")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("level not found", st.Message())

	roundTrip := errors.FromGRPCError(grpcErr)
	s.Assert().True(errors.IsNotFound(roundTrip))
	s.Assert().Equal("level_123", errors.GetMeta(roundTrip)["level_id"])

	fromStatus := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(fromStatus))
	s.Assert().Equal("invalid input", errors.GetMessage(fromStatus))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeDataLoss, codes.DataLoss},
		{errors.CodeInternal, codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapCopiesMeta() {
	inner := errors.NotFound("level not found").WithMeta("level_id", "level_1")
	wrapped := errors.Wrap(inner, "failed to get level")
	wrapped.WithMeta("attempt", 2)

	s.Assert().Equal("level_1", wrapped.Meta["level_id"])
	s.Assert().NotContains(inner.Meta, "attempt")
	s.Assert().True(errors.HasCode(wrapped, errors.CodeNotFound))
	s.Assert().False(errors.HasCode(nil, errors.CodeOK))
}
