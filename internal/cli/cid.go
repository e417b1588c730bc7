package cli

import (
	"os"

	"github.com/spf13/cobra"

	"xdao.co/rinchi/model"
	"xdao.co/rinchi/rinchi"
)

// NewCIDCommand creates the cid command.
func NewCIDCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cid <file>",
		Short: "Print the CID of an encoded RInChI file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			b, err := os.ReadFile(args[0])
			if err != nil {
				return out.Fail(ExitCommandError, model.NewError(model.ErrInvalidRequest, err.Error()))
			}
			doc, err := rinchi.NewDocument(b)
			if err != nil {
				return out.Fail(ExitFailure, err)
			}
			return out.Success(model.Archived{CID: doc.CID, RInChI: doc.String()}, doc.CID+"\n")
		},
	}
}
