package cli

import (
	"errors"
	"fmt"
	"time"

	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

type tokenOptions struct {
	ID   string
	Role string
	TTL  time.Duration
}

// NewTokenCommand signs a bearer token with JWT_SECRET, for local testing of the API.
func NewTokenCommand() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runToken(cmd, cfg.Auth, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "actor id (token subject)")
	cmd.Flags().StringVar(&opts.Role, "role", string(entities.RoleCustomer), "customer|technician|supplier|admin")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}

func runToken(cmd *cobra.Command, auth config.Auth, opts *tokenOptions) error {
	if auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set; without it the API trusts the actor headers")
	}
	actor := entities.Actor{ID: opts.ID, Role: entities.Role(opts.Role)}
	if actor.ID == "" || !actor.Role.Valid() {
		return fmt.Errorf("invalid actor id=%q role=%q", opts.ID, opts.Role)
	}
	token, err := middleware.IssueToken(auth, actor, opts.TTL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
