// orderreport prints revenue, notification and profile reports for a data set.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/example/orderdesk/go/pkg/config"
	"github.com/example/orderdesk/go/pkg/fixture"
	"github.com/example/orderdesk/go/pkg/logging"
	"github.com/example/orderdesk/go/pkg/models"
	"github.com/example/orderdesk/go/pkg/notify"
	"github.com/example/orderdesk/go/pkg/records"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg      config.Config
	dataFile string
	verbose  bool
	logger   *zap.Logger
	data     *fixture.Dataset
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "orderreport",
		Short:         "Report on a set of orders and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := a.cfg.LogLevel
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(level, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.logger = logger

			ds, err := fixture.Load(a.dataFile)
			if err != nil {
				return err
			}
			a.data = ds
			logger.Debug("dataset loaded",
				zap.String("path", a.dataFile),
				zap.Int("orders", len(ds.Orders)),
				zap.Int("users", len(ds.Users)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.dataFile, "data", cfg.DataFile, "YAML or JSON data set")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.revenueCmd(), a.notifyCmd(), a.profileCmd(), a.spentCmd(), a.statusCmd())
	return root
}

func (a *app) revenueCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Print total revenue, optionally for one order status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := a.data.Orders
			if status != "" {
				st, err := models.ParseOrderStatus(status)
				if err != nil {
					return err
				}
				orders = records.FilterByStatus(orders, st)
				fmt.Fprintf(cmd.OutOrStdout(), "Orders %s: %d\n", st, len(orders))
			}
			fmt.Fprintln(cmd.OutOrStdout(), records.RevenueLine(records.SumAmounts(orders)))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only count orders with this status")
	return cmd
}

func (a *app) notifyCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show which order notifications would be sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []notify.Option{}
			if all {
				opts = append(opts, notify.WithEligibility(notify.AllOrders))
			}
			plan := notify.NewPlanner(a.logger, opts...).Plan(a.data.Orders)

			out := cmd.OutOrStdout()
			for _, m := range plan.Messages {
				fmt.Fprintln(out, m)
			}
			for _, s := range plan.Skipped {
				if s.Reason == notify.ReasonNotSendable {
					fmt.Fprintf(out, "Could not send email for Order #%d: %s.\n", s.OrderID, records.ErrNotSendable)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include pending orders")
	return cmd
}

func (a *app) profileCmd() *cobra.Command {
	var admin bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the display profile of every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.data.Profile
			if cmd.Flags().Changed("admin") {
				cfg.IsAdmin = admin
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			for i, u := range a.data.Users {
				p, err := records.DeriveUserProfile(u, cfg)
				if err != nil {
					return fmt.Errorf("user %d: %w", i, err)
				}
				if err := enc.Encode(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "derive profiles with the admin role")
	return cmd
}

func (a *app) spentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spent",
		Short: "Print the total of the data set's prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), records.SpentLine(records.SumPrices(a.data.Prices)))
			return nil
		},
	}
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <code>",
		Short: "Print the label of an account status code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("status code %q: %w", args[0], err)
			}
			if status, ok := records.ClassifyStatusCode(code); ok {
				fmt.Fprintln(cmd.OutOrStdout(), status)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
			}
			return nil
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
