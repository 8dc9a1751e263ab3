// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sekeco/iam-service/internal/types"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List users for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var users []types.TenantUser
		if err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+args[0]+"/users", nil, &users); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.UserID, u.Email, u.Role)
		}
		w.Flush()
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update [tenant-id] [user-id] [role]",
	Short: "Update user role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(cmd.Context(), http.MethodPatch, "/api/v0/tenants/"+args[0]+"/users/"+args[1], map[string]string{
			"role": args[2],
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User updated: %s (Role: %s)\n", args[1], args[2])
		return nil
	},
}

var removeUserCmd = &cobra.Command{
	Use:   "remove [tenant-id] [user-id]",
	Short: "Remove a user from a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.do(cmd.Context(), http.MethodDelete, "/api/v0/tenants/"+args[0]+"/users/"+args[1], nil, nil); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}

		fmt.Printf("User removed: %s\n", args[1])
		return nil
	},
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Manage tenant invitations",
}

var inviteUserCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Invite a user to a tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var invitation types.Invitation
		err := client.do(cmd.Context(), http.MethodPost, "/api/v0/tenants/"+args[0]+"/invitations", map[string]string{
			"email": args[1],
			"role":  args[2],
		}, &invitation)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("User invited: %s\n", invitation.Email)
		fmt.Printf("Expires at: %s\n", invitation.ExpiresAt)
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List pending invitations for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var invitations []types.Invitation
		if err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+args[0]+"/invitations", nil, &invitations); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tEXPIRES_AT")
		for _, i := range invitations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, i.ExpiresAt)
		}
		w.Flush()
		return nil
	},
}

var cancelInvitationCmd = &cobra.Command{
	Use:   "cancel [tenant-id] [invitation-id]",
	Short: "Cancel a pending invitation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.do(cmd.Context(), http.MethodDelete, "/api/v0/tenants/"+args[0]+"/invitations/"+args[1], nil, nil); err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}

		fmt.Printf("Invitation cancelled: %s\n", args[1])
		return nil
	},
}

var acceptInvitationCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept an invitation by token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.do(cmd.Context(), http.MethodPost, "/api/v0/invitations/"+args[0]+"/accept", nil, nil); err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}

		fmt.Println("Invitation accepted")
		return nil
	},
}

var rejectInvitationCmd = &cobra.Command{
	Use:   "reject [token]",
	Short: "Reject an invitation by token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.do(cmd.Context(), http.MethodPost, "/api/v0/invitations/"+args[0]+"/reject", nil, nil); err != nil {
			return fmt.Errorf("failed to reject invitation: %w", err)
		}

		fmt.Println("Invitation rejected")
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(updateUserCmd)
	usersCmd.AddCommand(removeUserCmd)

	rootCmd.AddCommand(invitationsCmd)
	invitationsCmd.AddCommand(inviteUserCmd)
	invitationsCmd.AddCommand(listInvitationsCmd)
	invitationsCmd.AddCommand(cancelInvitationCmd)
	invitationsCmd.AddCommand(acceptInvitationCmd)
	invitationsCmd.AddCommand(rejectInvitationCmd)
}
