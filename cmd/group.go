package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newGroupCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage calendar groups",
	}

	cmd.AddCommand(
		newGroupListCmd(app),
		newGroupUseCmd(app),
		newGroupShowCmd(app),
		newGroupDeleteCmd(app),
	)

	return cmd
}

func newGroupListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the groups the current member belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			var groups []domain.Group
			if err := fetchInto(cmd.Context(), app, api.GroupListRequest(session.UserID), &groups); err != nil {
				return fmt.Errorf("fetch groups: %w", err)
			}

			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no groups")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", group.ID, group.Name)
			}
			return nil
		},
	}
}

func newGroupUseCmd(app *app) *cobra.Command {
	var groupID int64
	var personal bool

	cmd := &cobra.Command{
		Use:   "use",
		Short: "Pick the calendar later commands default to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			if personal {
				groupID = domain.PersonalGroupID
			}

			if groupID != domain.PersonalGroupID {
				var groups []domain.Group
				if err := fetchInto(cmd.Context(), app, api.GroupListRequest(session.UserID), &groups); err != nil {
					return fmt.Errorf("fetch groups: %w", err)
				}
				if !memberOfGroup(groups, groupID) {
					return fmt.Errorf("%w: not a member of group %d", domain.ErrValidation, groupID)
				}
			}

			app.groups.Select(groupID)
			if err := saveDefaultGroup(groupID); err != nil {
				return err
			}

			if groupID == domain.PersonalGroupID {
				fmt.Fprintln(cmd.OutOrStdout(), "using the personal calendar")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "using group %d\n", groupID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "id", domain.PersonalGroupID, "Group ID")
	cmd.Flags().BoolVar(&personal, "personal", false, "Switch back to the personal calendar")

	return cmd
}

func memberOfGroup(groups []domain.Group, groupID int64) bool {
	for _, group := range groups {
		if group.ID == groupID {
			return true
		}
	}
	return false
}

func newGroupShowCmd(app *app) *cobra.Command {
	var groupID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the admin detail of a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			var detail domain.GroupDetail
			if err := fetchInto(cmd.Context(), app, api.GroupAdminRequest(session.UserID, groupID), &detail); err != nil {
				return fmt.Errorf("fetch group detail: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (#%d)\n", detail.Name, detail.GroupID)
			if detail.Description != "" {
				fmt.Fprintln(out, detail.Description)
			}
			if len(detail.GroupTags) > 0 {
				fmt.Fprint(out, "tags:")
				for _, tag := range detail.GroupTags {
					fmt.Fprintf(out, " %s", tag.Name)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "members: %d, managers: %d\n", len(detail.GroupMembers), len(detail.GroupManagers))
			if detail.GroupNotice != "" {
				fmt.Fprintf(out, "notice: %s\n", detail.GroupNotice)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "id", 0, "Group ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newGroupDeleteCmd(app *app) *cobra.Command {
	var groupID int64
	var force bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a group (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			if !force {
				confirmed, err := app.notifier.ConfirmDeletion(fmt.Sprintf("group %d", groupID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
			}

			if err := fetchInto(cmd.Context(), app, api.DeleteGroupRequest(session.UserID, groupID), nil); err != nil {
				return fmt.Errorf("delete group: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted group %d\n", groupID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "id", 0, "Group ID")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
