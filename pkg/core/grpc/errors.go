package grpc

import (
	"context"
	stderrors "errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// ErrorDomain tags ErrorInfo details produced by StatusFromError
const ErrorDomain = "textkit"

var codeToStatus = map[mdwerror.Code]codes.Code{
	mdwerror.CodeInvalidArgument:    codes.InvalidArgument,
	mdwerror.CodeNotFound:           codes.NotFound,
	mdwerror.CodeTimeout:            codes.DeadlineExceeded,
	mdwerror.CodeServiceUnavailable: codes.Unavailable,
}

var statusToCode = map[codes.Code]mdwerror.Code{
	codes.InvalidArgument:  mdwerror.CodeInvalidArgument,
	codes.NotFound:         mdwerror.CodeNotFound,
	codes.DeadlineExceeded: mdwerror.CodeTimeout,
	codes.Unavailable:      mdwerror.CodeServiceUnavailable,
}

// StatusCode returns the gRPC status code for an error code
func StatusCode(code mdwerror.Code) codes.Code {
	if c, ok := codeToStatus[code]; ok {
		return c
	}
	return codes.Internal
}

// StatusFromError converts err into a gRPC status error. Errors that already
// carry a status pass through; coded errors keep their code, module and
// operation in an ErrorInfo detail so ErrorFromStatus can restore them.
func StatusFromError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	coded, ok := mdwerror.As(err)
	if !ok {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return status.Error(codes.DeadlineExceeded, err.Error())
		}
		if stderrors.Is(err, context.Canceled) {
			return status.Error(codes.Canceled, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(StatusCode(coded.Code()), coded.Message())
	info := &errdetails.ErrorInfo{
		Reason:   coded.Code().String(),
		Domain:   ErrorDomain,
		Metadata: map[string]string{},
	}
	if module := errors.ExtractModule(coded); module != "" {
		info.Metadata["module"] = module
	}
	if operation := errors.ExtractOperation(coded); operation != "" {
		info.Metadata["operation"] = operation
	}

	if withDetails, derr := st.WithDetails(info); derr == nil {
		st = withDetails
	}
	return st.Err()
}

// ErrorFromStatus converts a gRPC status error back into a coded error.
// Returns nil for nil; non-status errors become INTERNAL.
func ErrorFromStatus(err error) *mdwerror.Error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return mdwerror.Wrap(err, "remote call failed").WithCode(mdwerror.CodeInternal)
	}
	if st.Code() == codes.OK {
		return nil
	}

	code, found := statusToCode[st.Code()]
	if !found {
		code = mdwerror.CodeInternal
	}

	result := mdwerror.New(st.Message()).WithDetail("grpc_code", st.Code().String())
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		if reason := mdwerror.Code(info.GetReason()); reason.IsValid() {
			code = reason
		}
		for k, v := range info.GetMetadata() {
			result = result.WithDetail(k, v)
		}
		if module, op := info.GetMetadata()["module"], info.GetMetadata()["operation"]; module != "" && op != "" {
			result = result.WithOperation(module + "." + op)
		}
	}

	return result.WithCode(code)
}
