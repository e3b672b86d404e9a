package cmd

import (
	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

func queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Ledger query subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	cmd.AddCommand(
		queryStatusCmd(),
		queryCertificateCmd(),
		queryCertificatesCmd(),
		queryFeesCmd(),
		queryBalanceCmd(),
		queryInvariantsCmd(),
	)
	return cmd
}

// queryRun opens the node, runs fn and prints its result as JSON.
func queryRun(fn func(node *app.App, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(node *app.App) error {
			out, err := fn(node, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		})
	}
}

func queryStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show params, counters, escrow totals and the exchange rate",
		Args:  cobra.NoArgs,
		RunE: queryRun(func(node *app.App, _ []string) (any, error) {
			return node.Status()
		}),
	}
}

func queryCertificateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "certificate [id]",
		Short: "Show the record of a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: queryRun(func(node *app.App, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			cert, err := node.Certificate(id)
			if err != nil {
				return nil, err
			}
			return framedcointypes.IdentifiedCertificate{ID: id, Certificate: cert}, nil
		}),
	}
}

func queryCertificatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "List certificates, optionally only those of one holder",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("holder", "", "Only list certificates held by this address")
	cmd.RunE = queryRun(func(node *app.App, _ []string) (any, error) {
		holder, err := cmd.Flags().GetString("holder")
		if err != nil {
			return nil, err
		}
		if holder != "" {
			return node.CertificatesByHolder(holder)
		}
		return node.Certificates()
	})
	return cmd
}

func queryFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Show the minting fees awaiting withdrawal (owner only)",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String(FlagFrom, "", "Bech32 address of the caller")
	cmd.RunE = queryRun(func(node *app.App, _ []string) (any, error) {
		from, err := sender(cmd)
		if err != nil {
			return nil, err
		}
		fees, err := node.UnwithdrawnFees(from)
		if err != nil {
			return nil, err
		}
		return map[string]string{"unwithdrawn_fees": fees.String()}, nil
	})
	return cmd
}

func queryBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the base currency held by an address",
		Args:  cobra.ExactArgs(1),
		RunE: queryRun(func(node *app.App, args []string) (any, error) {
			return node.Balance(args[0])
		}),
	}
}

func queryInvariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invariants",
		Short: "Check the escrow invariants against the committed state",
		Args:  cobra.NoArgs,
		RunE: queryRun(func(node *app.App, _ []string) (any, error) {
			if err := node.AssertInvariants(); err != nil {
				return nil, err
			}
			return map[string]any{"ok": true, "height": node.LastHeight()}, nil
		}),
	}
}
