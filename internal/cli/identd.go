package cli

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"xdao.co/rinchi/identifier"
	"xdao.co/rinchi/identifier/grpcid"
	"xdao.co/rinchi/internal/config"
	"xdao.co/rinchi/rinchi"
)

type identdOptions struct {
	listen      string
	adapter     string
	execBin     string
	execArgs    []string
	maxMsgBytes int
	verbose     bool
}

// NewIdentdCommand creates the root command of rinchi-identd, the gRPC
// daemon that runs the identifier generator on behalf of remote encoders.
func NewIdentdCommand() *cobra.Command {
	o := &identdOptions{}

	cmd := &cobra.Command{
		Use:           "rinchi-identd",
		Short:         "Serve a molecule identifier generator over gRPC",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(o.verbose, cmd.ErrOrStderr())
			id, err := o.identifier(log)
			if err != nil {
				return WrapExitError(ExitCommandError, "identifier", err)
			}
			lis, err := net.Listen("tcp", o.listen)
			if err != nil {
				return WrapExitError(ExitFailure, "listen", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rinchi-identd listening on %s (adapter=%s)\n", lis.Addr().String(), o.adapter)
			if err := Serve(cmd.Context(), lis, id, ServeOptions{Logger: log, MaxMsgBytes: o.maxMsgBytes}); err != nil {
				return WrapExitError(ExitFailure, "serve", err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&o.listen, "listen", "127.0.0.1:7780", "listen address")
	fl.StringVar(&o.adapter, "adapter", config.AdapterExec, "identifier behind the service (exec|literal)")
	fl.StringVar(&o.execBin, "exec-bin", identifier.DefaultBin, "generator binary")
	fl.StringArrayVar(&o.execArgs, "exec-arg", nil, "generator argument (repeatable)")
	fl.IntVar(&o.maxMsgBytes, "max-msg-bytes", 0, "max gRPC message size (0: grpc default)")
	fl.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

func (o *identdOptions) identifier(log *zap.Logger) (rinchi.Identifier, error) {
	switch o.adapter {
	case config.AdapterExec:
		return identifier.NewExec(identifier.ExecOptions{Bin: o.execBin, Args: o.execArgs, Logger: log}), nil
	case config.AdapterLiteral:
		return identifier.Literal{}, nil
	default:
		return nil, fmt.Errorf("invalid adapter %q: must be exec or literal", o.adapter)
	}
}

type ServeOptions struct {
	Logger      *zap.Logger
	MaxMsgBytes int
}

// Serve runs the Identifier service on lis until ctx is done, then stops
// gracefully. A nil ctx serves until lis fails.
func Serve(ctx context.Context, lis net.Listener, id rinchi.Identifier, opts ServeOptions) error {
	var srvOpts []grpc.ServerOption
	if opts.MaxMsgBytes > 0 {
		srvOpts = append(srvOpts, grpc.MaxRecvMsgSize(opts.MaxMsgBytes), grpc.MaxSendMsgSize(opts.MaxMsgBytes))
	}
	s := grpc.NewServer(srvOpts...)
	grpcid.RegisterIdentifierServer(s, &grpcid.Server{Identifier: id, Logger: opts.Logger})

	if ctx != nil {
		stop := context.AfterFunc(ctx, s.GracefulStop)
		defer stop()
	}
	return s.Serve(lis)
}
