// Package user implements the user management command.
package user

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hackdeck/hackdeck/cmd"
	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/spf13/cobra"
)

// Command is the user subcommand.
var Command = &cobra.Command{
	Use:                "user",
	Aliases:            []string{"users"},
	Short:              "Manage users",
	PersistentPreRunE:  cmd.InitBackendContext,
	PersistentPostRunE: cmd.CloseDBContext,
}

func init() {
	var name string
	var email string
	var password string
	var role string
	userCreateCommand := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			username := args[0]

			r := access.ParseRole(role)
			if r < 0 {
				return fmt.Errorf("%w: %q", access.ErrInvalidRole, role)
			}

			_, err := be.CreateUser(ctx, username, name, email, password, r)
			return err
		},
	}

	userCreateCommand.Flags().StringVarP(&name, "name", "n", "", "display name of the user")
	userCreateCommand.Flags().StringVarP(&email, "email", "e", "", "email address of the user")
	userCreateCommand.Flags().StringVarP(&password, "password", "p", "", "password for the user")
	userCreateCommand.Flags().StringVarP(&role, "role", "r", "participant", "role of the user (participant, judge, organizer, admin)")

	userDeleteCommand := &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			return be.DeleteUser(ctx, args[0])
		},
	}

	userListCommand := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			users, err := be.Users(ctx)
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(users))
			for _, u := range users {
				lines = append(lines, fmt.Sprintf("%s\t%s", u.Username, u.Role))
			}

			sort.Strings(lines)
			cmd.Println(strings.Join(lines, "\n"))
			return nil
		},
	}

	userSetRoleCommand := &cobra.Command{
		Use:   "set-role USERNAME ROLE",
		Short: "Set a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			user, err := be.User(ctx, args[0])
			if err != nil {
				return err
			}

			r := access.ParseRole(args[1])
			if r < 0 {
				return fmt.Errorf("%w: %q", access.ErrInvalidRole, args[1])
			}

			return be.SetUserRole(ctx, user.ID, r)
		},
	}

	userSetPasswordCommand := &cobra.Command{
		Use:   "set-password USERNAME PASSWORD",
		Short: "Set a user's password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			user, err := be.User(ctx, args[0])
			if err != nil {
				return err
			}

			return be.SetUserPassword(ctx, user.ID, args[1])
		},
	}

	Command.AddCommand(
		userCreateCommand,
		userDeleteCommand,
		userListCommand,
		userSetRoleCommand,
		userSetPasswordCommand,
	)
}
