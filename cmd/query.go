package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var ownerOfCmd = &cobra.Command{
	Use:   "owner-of <id>",
	Short: "Print the owner of a token",
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
		owner, err := ss.sale.OwnerOf(id)
		if err != nil {
			return ss.reverted(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), owner.Hex())
		return nil
	},
}

var totalSupplyCmd = &cobra.Command{
	Use:   "total-supply",
	Short: "Print the number of minted tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := openSale()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ss.sale.TotalSupply())
		return nil
	},
}

var balanceOfCmd = &cobra.Command{
	Use:   "balance-of <address|alias>",
	Short: "Print how many tokens an address holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAccount(args[0])
		if err != nil {
			return err
		}
		ss, err := openSale()
		if err != nil {
			return err
		}
		n, err := ss.sale.BalanceOf(addr)
		if err != nil {
			return ss.reverted(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <id>",
	Short: "Record a token transfer from the caller",
	Long: `Record that the caller transferred a token it holds. Presale mint counts
stay with the original minter.

Examples:
  catsale transfer alis 3 --from bob`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := caller()
		if err != nil {
			return err
		}
		to, err := parseAccount(args[0])
		if err != nil {
			return err
		}
		id, err := parseTokenID(args[1])
		if err != nil {
			return err
		}
		ss, err := openSale()
		if err != nil {
			return err
		}
		if err := ss.sale.ApplyTransfer(from, to, id); err != nil {
			return ss.reverted(err)
		}
		if err := ss.commit(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("token %d transferred to %s", id, to.Hex())))
		return nil
	},
}
