package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ideagen/ideagen-backend/config"
	"github.com/ideagen/ideagen-backend/internal/auth/password"
)

var errPasswordMismatch = errors.New("password does not match")

// readPassword prefers the flag value and falls back to the first line of stdin.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password given")
	}
	return line, nil
}

func newPasswordCmd() *cobra.Command {
	var plain string

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Hash and verify passwords",
	}
	cmd.PersistentFlags().StringVar(&plain, "password", "", "plaintext password (default: read from stdin)")

	hash := &cobra.Command{
		Use:   "hash",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPassword(cmd, plain)
			if err != nil {
				return err
			}
			h := password.NewHasher(config.FromEnv().Password.BcryptCost)
			hashed, err := h.Hash(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify HASH",
		Short: "Check a password against a bcrypt hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPassword(cmd, plain)
			if err != nil {
				return err
			}
			h := password.NewHasher(config.FromEnv().Password.BcryptCost)
			if !h.Verify(p, args[0]) {
				return errPasswordMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.AddCommand(hash, verify)
	return cmd
}
