package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/girijakangutkar/Expense-report-client/internal/api"
	"github.com/girijakangutkar/Expense-report-client/internal/cli"
	"github.com/girijakangutkar/Expense-report-client/internal/controller"
	"github.com/girijakangutkar/Expense-report-client/internal/session"
)

// app wires the session, the API client and the controller together for one
// command invocation.
type app struct {
	sess   *session.Session
	client *api.Client
	ctrl   *controller.Controller
}

func newApp(logger *slog.Logger) (*app, error) {
	cfg := cli.LoadAndValidateConfig(logger)

	sess, err := session.Open(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	client, err := api.New(cfg.APIBaseURL, sess, api.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return &app{
		sess:   sess,
		client: client,
		ctrl:   controller.New(client, cfg.PageSize),
	}, nil
}

func (a *app) requireAuth() error {
	if !a.sess.Authenticated() {
		return errors.New("not logged in (run 'exptrack login')")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var a *app

	root := &cobra.Command{
		Use:           "exptrack",
		Short:         "Track expenses against a remote expense service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.LoadEnvFile()
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := cli.SetupLogger(level)

			var err error
			a, err = newApp(logger)
			return err
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(&a),
		newRegisterCmd(&a),
		newLogoutCmd(&a),
		newReportCmd(&a),
		newAddCmd(&a),
		newEditCmd(&a),
		newDeleteCmd(&a),
	)
	return root
}

func newLoginCmd(a **app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(password, "Password: ")
			if err != nil {
				return err
			}
			user, err := (*a).client.Login(context.Background(), email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(a **app) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(password, "Password: ")
			if err != nil {
				return err
			}
			user, err := (*a).client.Register(context.Background(), name, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).sess.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newReportCmd(a **app) *cobra.Command {
	var date string
	var page int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show daily and monthly expense views for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).requireAuth(); err != nil {
				return err
			}
			d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			if err := (*a).ctrl.SetDate(context.Background(), d); err != nil {
				return err
			}
			if page > 1 {
				(*a).ctrl.SetPage(page)
			}
			cli.RenderReport(cmd.OutOrStdout(), (*a).ctrl.Snapshot())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "selected date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&page, "page", 1, "page of the daily list")
	return cmd
}

func newAddCmd(a **app) *cobra.Command {
	var amount, currency, comment, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).requireAuth(); err != nil {
				return err
			}
			d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			form := controller.Form{Amount: amount, Currency: currency, Comment: comment, Date: d}
			if err := (*a).ctrl.Submit(context.Background(), form); err != nil {
				return err
			}
			if err := (*a).ctrl.SetDate(context.Background(), d); err != nil {
				return err
			}
			cli.RenderReport(cmd.OutOrStdout(), (*a).ctrl.Snapshot())
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&comment, "comment", "", "what the expense was for")
	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency")
	_ = cmd.MarkFlagRequired("comment")
	return cmd
}

func newEditCmd(a **app) *cobra.Command {
	var amount, currency, comment string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).requireAuth(); err != nil {
				return err
			}
			(*a).ctrl.StartEdit(args[0])
			form := controller.Form{Amount: amount, Currency: currency, Comment: comment}
			if err := (*a).ctrl.Submit(context.Background(), form); err != nil {
				return err
			}
			cli.RenderReport(cmd.OutOrStdout(), (*a).ctrl.Snapshot())
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&comment, "comment", "", "what the expense was for")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency")
	_ = cmd.MarkFlagRequired("comment")
	return cmd
}

func newDeleteCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).requireAuth(); err != nil {
				return err
			}
			if err := (*a).ctrl.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			cli.RenderReport(cmd.OutOrStdout(), (*a).ctrl.Snapshot())
			return nil
		},
	}
}

func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

func readSecret(flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
