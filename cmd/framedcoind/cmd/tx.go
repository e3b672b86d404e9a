package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
)

// FlagFrom is the bech32 address a transaction is sent from.
const FlagFrom = "from"

func txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Ledger transaction subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	cmd.AddCommand(
		txMintCmd(),
		txCashOutCmd(),
		txBurnCmd(),
		txWithdrawFeesCmd(),
		txSetMintingFeeCmd(),
		txSetMinimumValueCmd(),
		txPauseCmd(true),
		txPauseCmd(false),
		txFundCmd(),
		txSendCmd(),
		txTransferCmd(),
	)
	cmd.PersistentFlags().String(FlagFrom, "", "Bech32 address of the sender")
	return cmd
}

// validateCmd returns an error for unknown subcommands and prints help
// otherwise.
func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return cmd.Help()
}

func sender(cmd *cobra.Command) (string, error) {
	from, err := cmd.Flags().GetString(FlagFrom)
	if err != nil {
		return "", err
	}
	if from == "" {
		return "", errors.New("--from must be set")
	}
	return from, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid certificate id %q", s)
	}
	return id, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

// txRun opens the node and runs fn with the --from address.
func txRun(fn func(cmd *cobra.Command, node *app.App, from string, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		from, err := sender(cmd)
		if err != nil {
			return err
		}
		return withNode(cmd, func(node *app.App) error {
			return fn(cmd, node, from, args)
		})
	}
}

func txMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint [payment]",
		Short: "Pay base currency into escrow and mint a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: txRun(func(cmd *cobra.Command, node *app.App, from string, args []string) error {
			payment, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			resp, err := node.Mint(from, payment)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		}),
	}
}

func txCashOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cash-out [id]",
		Short: "Redeem the value escrowed by a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: txRun(func(cmd *cobra.Command, node *app.App, from string, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := node.CashOut(from, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		}),
	}
}

func txBurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burn [id]",
		Short: "Destroy a cashed out certificate",
		Args:  cobra.ExactArgs(1),
		RunE: txRun(func(cmd *cobra.Command, node *app.App, from string, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := node.Burn(from, id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "certificate %d burnt\n", id)
			return err
		}),
	}
}

func txWithdrawFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-fees",
		Short: "Pay all unwithdrawn minting fees to the owner",
		Args:  cobra.NoArgs,
		RunE: txRun(func(cmd *cobra.Command, node *app.App, from string, _ []string) error {
			resp, err := node.WithdrawFees(from)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		}),
	}
}

func txSetMintingFeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-minting-fee [amount]",
		Short: "Set the fee retained from future mints",
		Args:  cobra.ExactArgs(1),
		RunE: txRun(func(_ *cobra.Command, node *app.App, from string, args []string) error {
			fee, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return node.SetMintingFee(from, fee)
		}),
	}
}

func txSetMinimumValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-minimum-value [amount]",
		Short: "Set the minimum value future certificates escrow",
		Args:  cobra.ExactArgs(1),
		RunE: txRun(func(_ *cobra.Command, node *app.App, from string, args []string) error {
			minimum, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return node.SetMinimumValueToMint(from, minimum)
		}),
	}
}

func txPauseCmd(paused bool) *cobra.Command {
	use, short := "pause", "Stop accepting new mints"
	if !paused {
		use, short = "unpause", "Resume accepting new mints"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: txRun(func(_ *cobra.Command, node *app.App, from string, _ []string) error {
			return node.SetPaused(from, paused)
		}),
	}
}

func txFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund [address] [amount]",
		Short: "Mint base currency to an address through the faucet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return withNode(cmd, func(node *app.App) error {
				return node.Fund(args[0], amount)
			})
		},
	}
}

func txSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [to] [amount]",
		Short: "Transfer base currency to another account",
		Args:  cobra.ExactArgs(2),
		RunE: txRun(func(_ *cobra.Command, node *app.App, from string, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return node.Send(from, args[0], amount)
		}),
	}
}

func txTransferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [id] [to]",
		Short: "Transfer a certificate to another holder",
		Args:  cobra.ExactArgs(2),
		RunE: txRun(func(_ *cobra.Command, node *app.App, from string, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return node.TransferCertificate(from, args[1], id)
		}),
	}
}
