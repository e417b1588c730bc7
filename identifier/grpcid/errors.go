package grpcid

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrEmptyMolecule = errors.New("grpcid: empty molecule")
	ErrUnavailable   = errors.New("grpcid: identifier unavailable")
)

// IdentifyError carries a generator failure reported by the server.
type IdentifyError struct {
	Message string
}

func (e *IdentifyError) Error() string {
	return fmt.Sprintf("grpcid: remote identify failed: %s", e.Message)
}

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return ErrEmptyMolecule
	case codes.FailedPrecondition, codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Aborted:
		return &IdentifyError{Message: st.Message()}
	default:
		return err
	}
}
