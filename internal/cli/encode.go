package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xdao.co/rinchi/internal/config"
	"xdao.co/rinchi/internal/reactionfile"
	"xdao.co/rinchi/model"
)

type encodeFlags struct {
	adapter     string
	execBin     string
	execArgs    []string
	grpcTarget  string
	grpcTimeout time.Duration
	mode        string
	parallel    int
	storeDirs   []string
	ipfsRepo    string
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	f := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode <reaction.yaml>",
		Short: "Encode a reaction file as RInChI",
		Long: `Encode reads a YAML reaction (reactants, products, agents), runs every
molecule through the selected identifier adapter and prints the RInChI line.

Adapters:
  literal  entries already are InChI strings (default)
  exec     run an external generator per molecule (default: obabel -ismi -oinchi)
  grpc     call a remote rinchi-identd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, f, args[0], cmd)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.adapter, "adapter", config.AdapterLiteral, "identifier adapter (literal|exec|grpc)")
	fl.StringVar(&f.execBin, "exec-bin", "", "generator binary for --adapter=exec")
	fl.StringArrayVar(&f.execArgs, "exec-arg", nil, "generator argument (repeatable)")
	fl.StringVar(&f.grpcTarget, "grpc-target", "", "rinchi-identd address for --adapter=grpc")
	fl.DurationVar(&f.grpcTimeout, "grpc-timeout", 10*time.Second, "per-molecule RPC timeout")
	fl.StringVar(&f.mode, "mode", "permissive", "compliance mode (permissive|strict)")
	fl.IntVar(&f.parallel, "parallel", 0, "identify up to N molecules concurrently (0 or 1: sequential)")
	fl.StringArrayVar(&f.storeDirs, "store-dir", nil, "archive the result in this directory (repeatable)")
	fl.StringVar(&f.ipfsRepo, "ipfs-repo", "", "also archive the result as a raw block in this IPFS repository")

	return cmd
}

// merge overlays explicitly set flags on the config file values.
func (f *encodeFlags) merge(cmd *cobra.Command, cfg config.Config) config.Config {
	fl := cmd.Flags()
	if fl.Changed("adapter") || cfg.Adapter == "" {
		cfg.Adapter = f.adapter
	}
	if fl.Changed("exec-bin") {
		cfg.Exec.Bin = f.execBin
	}
	if fl.Changed("exec-arg") {
		cfg.Exec.Args = f.execArgs
	}
	if fl.Changed("grpc-target") {
		cfg.GRPC.Target = f.grpcTarget
	}
	if fl.Changed("grpc-timeout") || cfg.GRPC.Timeout == 0 {
		cfg.GRPC.Timeout = f.grpcTimeout
	}
	if fl.Changed("mode") || cfg.Mode == "" {
		cfg.Mode = f.mode
	}
	if fl.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if fl.Changed("store-dir") {
		cfg.StoreDirs = f.storeDirs
	}
	if fl.Changed("ipfs-repo") {
		cfg.IPFS.Enabled = true
		cfg.IPFS.Repo = f.ipfsRepo
	}
	return cfg
}

func runEncode(opts *RootOptions, f *encodeFlags, path string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	log := opts.logger()

	cfg := f.merge(cmd, opts.Config)
	if err := cfg.Validate(); err != nil {
		return out.Fail(ExitCommandError, model.NewError(model.ErrInvalidRequest, err.Error()))
	}

	log.Debug("encoding reaction file",
		zap.String("path", path),
		zap.String("adapter", cfg.Adapter),
		zap.Stringer("mode", cfg.ComplianceMode()),
	)
	rf, err := reactionfile.Load(path)
	if err != nil {
		return out.Fail(ExitCommandError, model.NewError(model.ErrInvalidRequest, err.Error()))
	}

	id, closeFn, err := cfg.OpenIdentifier(log)
	if err != nil {
		return out.Fail(ExitCommandError, err)
	}
	if closeFn != nil {
		defer closeFn()
	}
	store, err := cfg.OpenStore(log)
	if err != nil {
		return out.Fail(ExitCommandError, err)
	}

	res, err := model.Encode(rf.Request(model.ComplianceMode(cfg.Mode)), model.EncodeOptions{
		Identifier:  id,
		Parallelism: cfg.Parallel,
		Logger:      log,
		Store:       store,
	})
	if err != nil {
		return out.Fail(ExitFailure, err)
	}
	return out.Success(res, res.RInChI)
}
