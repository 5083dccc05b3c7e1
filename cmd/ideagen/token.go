package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideagen/ideagen-backend/config"
	"github.com/ideagen/ideagen-backend/internal/auth/token"
	"github.com/ideagen/ideagen-backend/internal/logging"
)

var errInvalidToken = errors.New("the confirmation link is invalid or has expired")

// newSerializer only needs the token settings; NewSerializer checks the secret and salt.
func newSerializer() (*token.Serializer, error) {
	return token.NewSerializer(config.FromEnv().Token)
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and confirm email confirmation tokens",
	}

	issue := &cobra.Command{
		Use:   "issue EMAIL",
		Short: "Print a confirmation token for EMAIL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSerializer()
			if err != nil {
				return err
			}
			tok, err := s.Generate(args[0])
			if err != nil {
				return err
			}
			logging.NewLogger(cmd.Context()).LogInfo("token_issue", "issued confirmation token")
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	var maxAge time.Duration
	confirm := &cobra.Command{
		Use:   "confirm TOKEN",
		Short: "Print the email a token was issued for, if it is still valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSerializer()
			if err != nil {
				return err
			}
			email, ok := s.Confirm(args[0], maxAge)
			if !ok {
				logging.NewLogger(cmd.Context()).LogDebugf("token_confirm", "token rejected token_len=%d max_age=%s", len(args[0]), maxAge)
				return errInvalidToken
			}
			fmt.Fprintln(cmd.OutOrStdout(), email)
			return nil
		},
	}
	confirm.Flags().DurationVar(&maxAge, "max-age", 0, "maximum token age (default: TOKEN_MAX_AGE)")

	cmd.AddCommand(issue, confirm)
	return cmd
}
