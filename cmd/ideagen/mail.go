package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ideagen/ideagen-backend/config"
	"github.com/ideagen/ideagen-backend/internal/auth/token"
	"github.com/ideagen/ideagen-backend/internal/mailer"
)

func newMailer(cfg *config.Config) (*mailer.Mailer, error) {
	transport, err := mailer.NewSMTPTransport(cfg.Mail)
	if err != nil {
		return nil, err
	}
	return mailer.New(cfg.Mail, transport), nil
}

// confirmationURL appends the token as the last path segment of base.
func confirmationURL(base, tok string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return u.JoinPath(tok).String(), nil
}

func newMailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Send email through the configured SMTP server",
	}

	var to, subject, htmlFile string
	send := &cobra.Command{
		Use:   "send",
		Short: "Send an HTML email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			body, err := os.ReadFile(htmlFile)
			if err != nil {
				return fmt.Errorf("read html body: %w", err)
			}
			m, err := newMailer(cfg)
			if err != nil {
				return err
			}
			return m.Send(cmd.Context(), to, subject, string(body))
		},
	}
	send.Flags().StringVar(&to, "to", "", "recipient address")
	send.Flags().StringVar(&subject, "subject", "", "subject line")
	send.Flags().StringVar(&htmlFile, "html-file", "", "path to the pre-rendered HTML body")
	_ = send.MarkFlagRequired("to")
	_ = send.MarkFlagRequired("html-file")

	var confirmTo, baseURL string
	confirm := &cobra.Command{
		Use:   "confirm",
		Short: "Issue a confirmation token and email the activation link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s, err := token.NewSerializer(cfg.Token)
			if err != nil {
				return err
			}
			to := strings.TrimSpace(confirmTo)
			tok, err := s.Generate(to)
			if err != nil {
				return err
			}
			link, err := confirmationURL(baseURL, tok)
			if err != nil {
				return err
			}
			m, err := newMailer(cfg)
			if err != nil {
				return err
			}
			return m.SendConfirmation(cmd.Context(), to, link)
		},
	}
	confirm.Flags().StringVar(&confirmTo, "to", "", "address to confirm")
	confirm.Flags().StringVar(&baseURL, "base-url", "http://localhost:5000/confirm", "confirmation endpoint the token is appended to")
	_ = confirm.MarkFlagRequired("to")

	cmd.AddCommand(send, confirm)
	return cmd
}
