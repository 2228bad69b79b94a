package cmd

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/ui"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

var mintValue string

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint tokens in the presale, the public sale or as the owner",
	Long: `Mint tokens from the caller's account.

--value is the payment sent with the call. A bare number is ether; the
suffixes eth, ether, gwei and wei are accepted. Overpayment is kept by the
sale. Without --value the exact cost is paid.

Examples:
  catsale mint public 2 --value 6 --from bob
  catsale mint pre 5 --value "10 ether" --from bob
  catsale mint owner 20`,
}

var mintPublicCmd = &cobra.Command{
	Use:   "public <quantity>",
	Short: "Mint at the public price (presale must be off)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return buyerMint(cmd, args[0], sale.PhasePublic)
	},
}

var mintPreCmd = &cobra.Command{
	Use:   "pre <quantity>",
	Short: "Mint at the presale price against the caller's whitelist allocation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return buyerMint(cmd, args[0], sale.PhasePresale)
	},
}

var mintOwnerCmd = &cobra.Command{
	Use:   "owner <quantity>",
	Short: "Mint free tokens to the owner (ignores pause and phase)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := parseQuantity(args[0])
		if err != nil {
			return err
		}
		var tokens []sale.Token
		err = ownerCall(cmd, func(ss *session, from common.Address) error {
			tokens, err = ss.sale.OwnerMint(from, qty)
			return err
		}, fmt.Sprintf("owner minted %d tokens", qty))
		if err != nil {
			return err
		}
		printTokens(cmd, tokens)
		return nil
	},
}

func buyerMint(cmd *cobra.Command, arg string, phase sale.Phase) error {
	qty, err := parseQuantity(arg)
	if err != nil {
		return err
	}
	from, err := caller()
	if err != nil {
		return err
	}
	ss, err := openSale()
	if err != nil {
		return err
	}

	paid := new(big.Int).Mul(ss.sale.UnitPrice(phase), new(big.Int).SetUint64(qty))
	if mintValue != "" {
		if paid, err = units.ParseValue(mintValue); err != nil {
			return fmt.Errorf("--value: %w", err)
		}
	}

	tokens, err := ss.sale.Mint(from, qty, paid, phase)
	if err != nil {
		return ss.reverted(err)
	}
	if err := ss.commit(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s minted %d tokens for %s ETH", phase, qty, units.FormatEther(paid))))
	printTokens(cmd, tokens)
	return nil
}

func printTokens(cmd *cobra.Command, tokens []sale.Token) {
	tbl := ui.NewTable([]ui.Column{
		{Title: "Token", Width: 8, Align: ui.AlignRight},
		{Title: "Owner", Width: 42},
	})
	for _, t := range tokens {
		tbl.AddRow(ui.Row{fmt.Sprintf("%d", t.ID), t.Owner.Hex()})
	}
	fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
}

func init() {
	mintPublicCmd.Flags().StringVar(&mintValue, "value", "", "payment (default: exact cost)")
	mintPreCmd.Flags().StringVar(&mintValue, "value", "", "payment (default: exact cost)")

	mintCmd.AddCommand(mintPublicCmd, mintPreCmd, mintOwnerCmd)
}
