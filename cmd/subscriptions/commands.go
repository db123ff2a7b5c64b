package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/subscriptions/modules/subscriptions"
	"github.com/dmitrymomot/subscriptions/pkg/httpserver"
	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

func (a *app) service(store subscription.Store) subscription.Service {
	return subscription.NewService(store, subscription.WithLogger(a.log))
}

// withService opens the backend, runs fn and releases the backend.
func (a *app) withService(cmd *cobra.Command, fn func(subscription.Service) error) error {
	b, err := a.openBackend(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()
	return fn(a.service(b.store))
}

func newServeCmd(a *app) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			b, err := a.openBackend(ctx, migrate)
			if err != nil {
				return err
			}
			defer func() { _ = b.Close() }()

			router := subscriptions.Router(subscriptions.RouterOptions{
				Service:      a.service(b.store),
				Logger:       a.log,
				HealthChecks: b.checks,
			})
			srv := httpserver.New(a.cfg.HTTP, httpserver.WithLogger(a.log))
			return srv.Run(ctx, router)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply PostgreSQL migrations before serving")
	return cmd
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations (postgres, sqlite) or create indexes (mongo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Driver == DriverMemory {
				return fmt.Errorf("%w: %s", ErrMigrationsNotNeeded, a.cfg.Driver)
			}
			b, err := a.openBackend(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = b.Close() }()
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", a.cfg.Driver)
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var (
		userID   int64
		name     string
		provider string
		expires  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an active subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := subscription.CreateRequest{Name: name, Provider: provider}
			if cmd.Flags().Changed("user") {
				req.UserID = &userID
			}
			if expires != "" {
				t, err := time.Parse(time.RFC3339, expires)
				if err != nil {
					return fmt.Errorf("--expires: %w", err)
				}
				req.ExpirationDate = t
			}

			return a.withService(cmd, func(svc subscription.Service) error {
				sub, err := svc.Upsert(cmd.Context(), req)
				if err != nil {
					return err
				}
				printSubscriptions(cmd.OutOrStdout(), sub)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&userID, "user", 0, "owner user id")
	flags.StringVar(&name, "name", "", "subscriber name")
	flags.StringVar(&provider, "provider", "", "billing provider (GOOGLE or APPLE)")
	flags.StringVar(&expires, "expires", "", "expiration date, RFC 3339")
	return cmd
}

func newCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an active subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd, func(svc subscription.Service) error {
				if err := svc.Cancel(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "subscription %d canceled\n", id)
				return nil
			})
		},
	}
}

func newExpireCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expire <id>",
		Short: "Expire a subscription now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd, func(svc subscription.Service) error {
				if err := svc.Expire(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "subscription %d expired\n", id)
				return nil
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withService(cmd, func(svc subscription.Service) error {
				var (
					subs []subscription.Subscription
					err  error
				)
				if cmd.Flags().Changed("user") {
					subs, err = svc.ListByUser(cmd.Context(), userID)
				} else {
					subs, err = svc.List(cmd.Context())
				}
				if err != nil {
					return err
				}
				printSubscriptions(cmd.OutOrStdout(), subs...)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "only this user's subscriptions")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd, func(svc subscription.Service) error {
				deleted, err := svc.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("%w: id %d", ErrNotDeleted, id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "subscription %d deleted\n", id)
				return nil
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func printSubscriptions(w io.Writer, subs ...subscription.Subscription) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tNAME\tPROVIDER\tSTATUS\tEXPIRES")
	for _, s := range subs {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			s.ID, s.UserID, s.Name, s.Provider, s.Status, s.ExpirationDate.Format(time.RFC3339))
	}
	_ = tw.Flush()
}
