// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	emailFlag = "email"
	roleFlag  = "role"
)

var errEmailRequired = errors.New("--email is required")

func newPromoteCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Email of the account to change (required)",
		},
		roleFlag: &cobraflags.StringFlag{
			Name:  roleFlag,
			Value: string(models.RoleAdmin),
			Usage: "Role to assign (admin or user)",
		},
	}

	promoteCmd := &cobra.Command{
		Use:   "promote",
		Short: "Change the role of an existing account",
		Long: `Sets the role of the account with the given email. There is no HTTP route for
this; promotion is an operator action.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := strings.TrimSpace(flags[emailFlag].GetString())
			role := models.Role(flags[roleFlag].GetString())
			if err := validatePromotion(email, role); err != nil {
				return err
			}

			ctx := cmd.Context()

			db, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := store.NewUserRepository(db, log).UpdateUserRole(ctx, email, role)
			if errors.Is(err, store.ErrNoUserWasFound) {
				return fmt.Errorf("no account with email %q", email)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s) now has role %s\n", user.UserID, user.Email, user.Role)
			return nil
		},
	}

	cobraflags.RegisterMap(promoteCmd, flags)
	return promoteCmd
}

func validatePromotion(email string, role models.Role) error {
	if email == "" {
		return errEmailRequired
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}
