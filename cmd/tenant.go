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

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantSlug string

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var tenant types.Tenant
		err := client.do(cmd.Context(), http.MethodPost, "/api/v0/tenants", map[string]string{
			"name": args[0],
			"slug": tenantSlug,
		}, &tenant)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s, slug: %s)\n", tenant.Name, tenant.ID, tenant.Slug)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.do(cmd.Context(), http.MethodDelete, "/api/v0/tenants/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var tenants []types.Tenant
		if err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants", nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tACTIVE\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Slug, t.IsActive, t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var activateTenantCmd = &cobra.Command{
	Use:   "activate [id]",
	Short: "Activate a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(cmd.Context(), http.MethodPut, "/api/v0/tenants/"+args[0]+"/status", map[string]bool{
			"active": true,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to activate tenant: %w", err)
		}

		fmt.Printf("Tenant activated: %s\n", args[0])
		return nil
	},
}

var deactivateTenantCmd = &cobra.Command{
	Use:   "deactivate [id]",
	Short: "Deactivate a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(cmd.Context(), http.MethodPut, "/api/v0/tenants/"+args[0]+"/status", map[string]bool{
			"active": false,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to deactivate tenant: %w", err)
		}

		fmt.Printf("Tenant deactivated: %s\n", args[0])
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a tenant name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(cmd.Context(), http.MethodPatch, "/api/v0/tenants/"+args[0], map[string]string{
			"name": args[1],
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(activateTenantCmd)
	tenantCmd.AddCommand(deactivateTenantCmd)
	tenantCmd.AddCommand(updateTenantCmd)

	createTenantCmd.Flags().StringVar(&tenantSlug, "slug", "", "URL slug, derived from the name when empty")
}
