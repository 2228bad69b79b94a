package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/ui"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sale flags, prices and supply",
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := openSale()
		if err != nil {
			return err
		}
		s := ss.sale

		phase := sale.PhasePublic
		if s.IsPresaleActive() {
			phase = sale.PhasePresale
		}

		pairs := [][2]string{
			{"Contract", ui.Addr(s.Address().Hex())},
			{"Owner", ui.Addr(s.Owner().Hex())},
			{"Status", ui.Flag(s.IsPaused(), "paused", "live")},
			{"Phase", ui.Phase(phase.String())},
			{"Revealed", ui.Flag(!s.IsRevealed(), "no", "yes")},
			{"Current cost", ui.Eth(units.FormatEther(s.GetCurrentCost()))},
			{"Public price", ui.Eth(units.FormatEther(s.UnitPrice(sale.PhasePublic)))},
			{"Presale price", ui.Eth(units.FormatEther(s.UnitPrice(sale.PhasePresale)))},
			{"Supply", ui.Val(fmt.Sprintf("%d / %d", s.TotalSupply(), s.MaxSupply()))},
			{"Max per tx", ui.Val(fmt.Sprintf("%d", s.MaxMintPerTx()))},
			{"Whitelist units", ui.Val(fmt.Sprintf("%d", s.WhitelistCount()))},
			{"Balance", ui.Eth(units.FormatEther(s.Balance()))},
			{"Base URI", ui.Meta(s.BaseURI() + s.BaseExtension())},
			{"Hidden URI", ui.Meta(s.NotRevealedURI())},
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(fmt.Sprintf("%s (%s)", s.Name(), s.Symbol()), pairs))
		return nil
	},
}
