// Package grpcid exposes a rinchi.Identifier over gRPC and consumes one.
//
// A deployment usually runs the generator (for example Open Babel) next to
// rinchi-identd and lets encoders elsewhere reach it through Client.
package grpcid

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/rinchi/rinchi"
)

// Server serves a rinchi.Identifier over the Identifier gRPC service.
//
// The raw generator output is returned unchanged; prefix checks and
// trimming stay with the encoder on the client side.
type Server struct {
	UnimplementedIdentifierServer
	Identifier rinchi.Identifier
	Logger     *zap.Logger
}

func (s *Server) Identify(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	if s == nil || s.Identifier == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing identifier")
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	mol := in.GetValue()
	if len(mol) == 0 {
		return nil, status.Error(codes.InvalidArgument, ErrEmptyMolecule.Error())
	}
	raw, err := s.Identifier.Identify(mol)
	if err != nil {
		s.logger().Debug("identify failed", zap.Int("molecule_bytes", len(mol)), zap.Error(err))
		return nil, status.Error(codes.Aborted, err.Error())
	}
	return wrapperspb.String(raw), nil
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
