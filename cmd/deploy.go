package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/store"
	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var (
	deployName      string
	deploySymbol    string
	deployHiddenURI string
	deployForce     bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Create a new sale owned by the caller",
	Long: `Deploy a new sale. It starts paused, in presale and unrevealed.

Name, symbol and hidden metadata URI default to the config values
(contract.name, contract.symbol, contract.hidden_uri), which can also come
from CONTRACT_NAME, CONTRACT_SYMBOL and IPFS_JSON in the config dir's .env.
Prices and caps come from the sale.* config keys.

Examples:
  catsale deploy --from 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
  catsale deploy --name AstarCats --symbol CAT --hidden-uri ipfs://Qm.../hidden.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deployer, err := caller()
		if err != nil {
			return err
		}

		st := store.NewJSONStore(cfg.StatePath())
		if _, err := st.Load(); err == nil && !deployForce {
			return fmt.Errorf("a sale already exists at %s (use --force to replace it)", st.Path())
		} else if err != nil && !errors.Is(err, store.ErrNoSale) && !deployForce {
			return err
		}

		name := firstNonEmpty(deployName, cfg.Contract.Name)
		symbol := firstNonEmpty(deploySymbol, cfg.Contract.Symbol)
		hidden := firstNonEmpty(deployHiddenURI, cfg.Contract.HiddenURI)

		params, err := cfg.Params()
		if err != nil {
			return err
		}
		payouts := store.NewPayoutJournal(cfg.PayoutsPath())
		s, err := sale.New(deployer, name, symbol, hidden, append(saleOptions(payouts), sale.WithParams(params))...)
		if err != nil {
			return err
		}
		rotated, err := payouts.Rotate()
		if err != nil {
			return fmt.Errorf("rotating payout journal: %w", err)
		}
		if err := st.Save(s.State()); err != nil {
			return fmt.Errorf("saving sale: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Banner(name, symbol))
		fmt.Fprintln(out, ui.KeyValueBlock("Deployed", [][2]string{
			{"Contract", ui.Addr(s.Address().Hex())},
			{"Owner", ui.Addr(deployer.Hex())},
			{"Max supply", ui.Val(fmt.Sprintf("%d", s.MaxSupply()))},
			{"State", ui.Meta(st.Path())},
		}))
		if rotated != "" {
			fmt.Fprintln(out, ui.Info("previous payouts moved to "+rotated))
		}
		fmt.Fprintln(out, ui.Warn("sale is paused: run `catsale unpause` to open it"))
		return nil
	},
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	deployCmd.Flags().StringVar(&deployName, "name", "", "collection name")
	deployCmd.Flags().StringVar(&deploySymbol, "symbol", "", "collection symbol")
	deployCmd.Flags().StringVar(&deployHiddenURI, "hidden-uri", "", "metadata URI served before reveal")
	deployCmd.Flags().BoolVar(&deployForce, "force", false, "replace an existing sale")
}
