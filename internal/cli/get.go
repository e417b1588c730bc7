package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xdao.co/rinchi/model"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		storeDirs []string
		ipfsRepo  string
	)

	cmd := &cobra.Command{
		Use:   "get <cid>",
		Short: "Print an archived reaction",
		Long: `Get looks a CID up in the given store directories, in order, then in the
IPFS repository if one is given, and prints the archived RInChI line.
Stored bytes are re-hashed before printing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)

			cfg := rootOpts.Config
			if cmd.Flags().Changed("store-dir") {
				cfg.StoreDirs = storeDirs
			}
			if cmd.Flags().Changed("ipfs-repo") {
				cfg.IPFS.Enabled = true
				cfg.IPFS.Repo = ipfsRepo
			}
			if len(cfg.StoreDirs) == 0 && !cfg.IPFS.Enabled {
				return out.Fail(ExitCommandError, model.NewError(model.ErrInvalidRequest, "at least one --store-dir or --ipfs-repo is required"))
			}
			store, err := cfg.OpenStore(rootOpts.logger())
			if err != nil {
				return out.Fail(ExitCommandError, model.NewError(model.ErrInvalidRequest, err.Error()))
			}

			got, err := model.Lookup(store, args[0])
			if err != nil {
				code := ExitFailure
				if model.AsCodedError(err).Code == model.ErrInvalidRequest {
					code = ExitCommandError
				}
				return out.Fail(code, err)
			}
			rootOpts.logger().Debug("found archived reaction", zap.String("cid", got.CID))
			return out.Success(got, got.RInChI)
		},
	}
	cmd.Flags().StringArrayVar(&storeDirs, "store-dir", nil, "store directory to search (repeatable)")
	cmd.Flags().StringVar(&ipfsRepo, "ipfs-repo", "", "IPFS repository to search after the store directories")
	return cmd
}
