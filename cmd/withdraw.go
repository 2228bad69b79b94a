package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/ui"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Send the sale balance to the owner",
	Long: `Withdraw the whole balance to the current owner. Payouts are appended to
the payout journal (payouts.json in the config dir) once the emptied sale has
been saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := caller()
		if err != nil {
			return err
		}

		// The payout is held until the zeroed balance is on disk.
		var held struct {
			to     common.Address
			amount *big.Int
		}
		hold := sale.PayeeFunc(func(ctx context.Context, to common.Address, amount *big.Int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			held.to, held.amount = to, new(big.Int).Set(amount)
			return nil
		})
		ss, err := openSale(sale.WithPayee(hold))
		if err != nil {
			return err
		}
		amount, err := ss.sale.Withdraw(cmd.Context(), from)
		if err != nil {
			return ss.reverted(err)
		}
		if err := ss.commit(); err != nil {
			return err
		}
		if err := ss.payouts.Send(context.WithoutCancel(cmd.Context()), held.to, held.amount); err != nil {
			return fmt.Errorf("sale emptied but payout of %s ETH to %s not journaled: %w",
				units.FormatEther(held.amount), held.to.Hex(), err)
		}

		total, err := ss.payouts.Total(ss.sale.Owner())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("withdrew %s ETH to %s", units.FormatEther(amount), ss.sale.Owner().Hex())))
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("total paid to owner: %s ETH", units.FormatEther(total))))
		return nil
	},
}
