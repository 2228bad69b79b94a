package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var (
	initAccount string
	initAlias   string
)

// dotEnvTemplate mirrors the variables of the original deployment script.
const dotEnvTemplate = `# Deployment values read by catsale deploy.
CONTRACT_NAME=AstarCats
CONTRACT_SYMBOL=CAT
IPFS_JSON=
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the config directory",
	Long: `Write config.json with a default owner account and a .env template with
the deployment variables (CONTRACT_NAME, CONTRACT_SYMBOL, IPFS_JSON).
An existing .env is left untouched.

Examples:
  catsale init --account 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if initAccount != "" {
			if _, ok := cfg.Accounts[lowerAlias(initAlias)]; !ok {
				if err := cfg.AddAccount(initAlias, initAccount); err != nil {
					return err
				}
			}
			cfg.DefaultAccount = initAlias
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		envPath := filepath.Join(cfg.Dir(), ".env")
		if _, err := os.Stat(envPath); os.IsNotExist(err) {
			if err := os.WriteFile(envPath, []byte(dotEnvTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Success("wrote "+envPath))
		}

		fmt.Fprintln(out, ui.Success("catsale configured in "+cfg.Dir()))
		fmt.Fprintln(out, ui.Hint("Next: catsale deploy"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initAccount, "account", "", "owner address used as the default caller")
	initCmd.Flags().StringVar(&initAlias, "alias", "owner", "alias for --account")
}
