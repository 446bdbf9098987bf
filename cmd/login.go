package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var memberID string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcome := app.client.Execute(cmd.Context(), api.LoginRequest(memberID, password))
			switch {
			case outcome.IsSuccess():
				var pair api.TokenPair
				if err := outcome.Decode(&pair); err != nil {
					return fmt.Errorf("decode login payload: %w", err)
				}

				session, err := pair.Session(domain.Session{UserID: memberID}, app.now())
				if err != nil {
					return fmt.Errorf("build session: %w", err)
				}
				if err := app.tokens.Set(cmd.Context(), session); err != nil {
					return fmt.Errorf("store session: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", session.UserID)
				return nil
			case outcome.IsUnauthorized():
				return fmt.Errorf("login rejected: wrong id or password")
			default:
				return fmt.Errorf("login: %w", outcome.Cause)
			}
		},
	}

	cmd.Flags().StringVar(&memberID, "member", "", "Member ID")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.tokens.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.UserID)
			return nil
		},
	}
}
