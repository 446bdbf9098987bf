package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newFriendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "friend",
		Short: "List the current member's friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			var friends []domain.Friend
			if err := fetchInto(cmd.Context(), app, api.FriendListRequest(session.UserID), &friends); err != nil {
				return fmt.Errorf("fetch friends: %w", err)
			}

			if len(friends) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no friends yet")
				return nil
			}
			for _, friend := range friends {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", friend.FriendMemberID, friend.FriendName)
			}
			return nil
		},
	}
}
