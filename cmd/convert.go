package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/ui"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

var convertTokens uint64

var convertCmd = &cobra.Command{
	Use:   "convert <amount>",
	Short: "Convert a payment between ETH, Gwei and Wei",
	Long: `Convert an amount between Ethereum denominations. The amount takes the
same form as mint --value: a bare number is ether, and the suffixes eth,
ether, gwei and wei are accepted.

With --tokens the configured public and presale costs for that many tokens
are shown as well.

Examples:
  catsale convert 1.5            # ether → gwei + wei
  catsale convert "50 gwei"
  catsale convert 1000000000wei
  catsale convert 0 --tokens 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wei, err := units.ParseValue(args[0])
		if err != nil {
			return err
		}

		pairs := [][2]string{
			{"Input", ui.Val(strings.TrimSpace(args[0]))},
			{"ETH", ui.Eth(units.FormatEther(wei))},
			{"Gwei", ui.Val(units.FormatGwei(wei) + " gwei")},
			{"Wei", ui.Val(wei.String() + " wei")},
			{"Hex", ui.Val("0x" + wei.Text(16))},
		}

		if convertTokens > 0 {
			params, err := cfg.Params()
			if err != nil {
				return err
			}
			n := new(big.Int).SetUint64(convertTokens)
			public := new(big.Int).Mul(params.PriceRegular, n)
			presale := new(big.Int).Mul(params.PricePresale, n)
			pairs = append(pairs,
				[2]string{fmt.Sprintf("%d × %s", convertTokens, sale.PhasePublic), ui.Eth(units.FormatEther(public))},
				[2]string{fmt.Sprintf("%d × %s", convertTokens, sale.PhasePresale), ui.Eth(units.FormatEther(presale))},
			)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Unit Conversion", pairs))
		return nil
	},
}

func init() {
	convertCmd.Flags().Uint64Var(&convertTokens, "tokens", 0, "also show the configured cost of this many tokens")
}
