package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage account aliases usable with --from and address arguments",
}

var accountAddCmd = &cobra.Command{
	Use:   "add <alias> <address>",
	Short: "Add an account alias",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.AddAccount(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Account %q added: %s", args[0], ui.Addr(cfg.Accounts[lowerAlias(args[0])]))))
		if cfg.DefaultAccount == "" {
			fmt.Fprintln(out, ui.Hint(fmt.Sprintf("Set as default with: catsale account use %s", args[0])))
		}
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List account aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(cfg.Accounts) == 0 {
			fmt.Fprintln(out, ui.Info("No accounts configured yet."))
			fmt.Fprintln(out, ui.Hint("Add one with: catsale account add owner 0xYourAddress"))
			return nil
		}

		aliases := make([]string, 0, len(cfg.Accounts))
		for alias := range cfg.Accounts {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)

		t := ui.NewTable([]ui.Column{
			{Title: "Alias", Width: 16},
			{Title: "Address", Width: 42},
			{Title: "Default", Width: 8},
		})
		for _, alias := range aliases {
			def := ""
			if lowerAlias(cfg.DefaultAccount) == alias {
				def = "✓"
			}
			t.AddRow(ui.Row{alias, cfg.Accounts[alias], def})
		}
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d account(s) configured", len(aliases))))
		return nil
	},
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Remove an account alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RemoveAccount(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Account %q removed.", args[0])))
		return nil
	},
}

var accountUseCmd = &cobra.Command{
	Use:   "use <alias|address>",
	Short: "Set the default caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := cfg.ResolveAccount(args[0]); err != nil {
			return err
		}
		cfg.DefaultAccount = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Default account set to %q.", args[0])))
		fmt.Fprintln(out, ui.Hint("It is used for every command run without --from."))
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountAddCmd, accountListCmd, accountRemoveCmd, accountUseCmd)
}
