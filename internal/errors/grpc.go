package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err for a gRPC handler return. Status errors pass
// through; metadata rides along as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e, ok := find(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) == 0 {
		return st.Err()
	}
	if detailed, detailErr := st.WithDetails(metaToStruct(e.Meta)); detailErr == nil {
		st = detailed
	}
	return st.Err()
}

// FromGRPCError converts a status error from a client call back into an
// *Error. Errors without a status are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, isStruct := detail.(*structpb.Struct); isStruct {
			e.Meta = meta.AsMap()
			break
		}
	}
	return e
}

// metaToStruct falls back to fmt.Sprint for values structpb cannot hold
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(meta))}
	for k, v := range meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		out.Fields[k] = value
	}
	return out
}
