package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var uriCmd = &cobra.Command{
	Use:   "uri",
	Short: "Manage and resolve token metadata URIs",
	Long: `Set the revealed base URI and extension, or resolve a token's URI.

Before reveal every token resolves to the hidden URI.

Examples:
  catsale uri base ipfs://QmRevealed/
  catsale uri ext .json
  catsale uri token 7`,
}

var uriBaseCmd = &cobra.Command{
	Use:   "base <uri>",
	Short: "Set the base URI used after reveal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.SetBaseURI(from, args[0])
		}, "base URI set to "+args[0])
	},
}

var uriExtCmd = &cobra.Command{
	Use:   "ext <extension>",
	Short: "Set the metadata file extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.SetBaseExtension(from, args[0])
		}, "base extension set to "+args[0])
	},
}

var uriTokenCmd = &cobra.Command{
	Use:   "token <id>",
	Short: "Resolve the metadata URI of a minted token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		ss, err := openSale()
		if err != nil {
			return err
		}
		uri, err := ss.sale.TokenURI(id)
		if err != nil {
			return ss.reverted(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		if !ss.sale.IsRevealed() {
			log.Debug("token URI is the hidden URI until reveal")
		}
		return nil
	},
}

func init() {
	uriCmd.AddCommand(uriBaseCmd, uriExtCmd, uriTokenCmd)
}
