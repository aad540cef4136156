/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx maps codelist errors onto gRPC statuses with standard
// google.rpc error details.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/codelist/adapter"
	"dirpx.dev/codelist/apis"
)

// Domain is the ErrorInfo domain of every status built by this package.
const Domain = "codelist.dirpx.dev"

// ToStatus converts err into a gRPC status. The code is resolved via m.
//
// The status carries an errdetails.ErrorInfo (reason = kind, metadata =
// system and invalid count) and, when the error exposes details, an
// errdetails.BadRequest with one FieldViolation per invalid code. Errors that
// already are gRPC statuses are returned unchanged. A nil err yields nil.
func ToStatus(m apis.Mapper, err error) *gstatus.Status {
	if err == nil {
		return nil
	}
	if st, ok := gstatus.FromError(err); ok {
		return st
	}

	st := adapter.Resolve(m, err)
	view := adapter.ToView(err)

	info := &errdetails.ErrorInfo{
		Reason:   view.Kind,
		Domain:   Domain,
		Metadata: map[string]string{},
	}
	if view.System != "" {
		info.Metadata["system"] = view.System
	}

	var br *errdetails.BadRequest
	if len(view.Details) > 0 {
		br = &errdetails.BadRequest{}
		for _, d := range view.Details {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       d.Code,
				Description: d.Reason,
				Reason:      d.Type,
			})
		}
		info.Metadata["invalid"] = strconv.Itoa(len(view.Details))
	}

	details := make([]*anypb.Any, 0, 2)
	if a, aerr := anypb.New(info); aerr == nil {
		details = append(details, a)
	}
	if br != nil {
		if a, aerr := anypb.New(br); aerr == nil {
			details = append(details, a)
		}
	}

	return gstatus.FromProto(&spb.Status{
		Code:    int32(st.GRPC),
		Message: view.Message,
		Details: details,
	})
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC statuses with ToStatus.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, ToStatus(m, err).Err()
	}
}

// Violation is one invalid code carried in a status.
type Violation struct {
	Code   string
	Kind   string
	Reason string
}

// Violations pulls the invalid codes out of a gRPC error, if present.
// Useful in tests and client code.
func Violations(err error) ([]Violation, bool) {
	br, ok := detail[*errdetails.BadRequest](err)
	if !ok {
		return nil, false
	}
	out := make([]Violation, 0, len(br.GetFieldViolations()))
	for _, fv := range br.GetFieldViolations() {
		out = append(out, Violation{Code: fv.GetField(), Kind: fv.GetReason(), Reason: fv.GetDescription()})
	}
	return out, true
}

// Info pulls the ErrorInfo out of a gRPC error, if present and issued by
// this package.
func Info(err error) (*errdetails.ErrorInfo, bool) {
	info, ok := detail[*errdetails.ErrorInfo](err)
	if !ok || info.GetDomain() != Domain {
		return nil, false
	}
	return info, true
}

func detail[T any](err error) (T, bool) {
	var zero T
	if err == nil {
		return zero, false
	}
	var se interface{ GRPCStatus() *gstatus.Status }
	if !errors.As(err, &se) {
		return zero, false
	}
	for _, d := range se.GRPCStatus().Details() {
		if v, ok := d.(T); ok {
			return v, true
		}
	}
	return zero, false
}
