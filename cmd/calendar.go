package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/adapters/render/calendar"
	"github.com/kit-coca/coca-cli/internal/application"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newCalendarCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Browse the calendar interactively",
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

			panel := application.NewPanelMachine(app.groups, app.notifier, app.addFailure)

			fetch := func(ctx context.Context, query domain.ScheduleQuery) domain.Outcome {
				return app.coordinator.Do(ctx, api.DetailRequest(query))
			}
			submit := func(ctx context.Context, schedule domain.Schedule, editing bool) error {
				spec := api.AddScheduleRequest(session.UserID, schedule)
				if editing {
					spec = api.ModifyScheduleRequest(session.UserID, schedule)
				}
				return fetchInto(ctx, app, spec, nil)
			}

			return calendar.Run(calendar.Options{
				MemberID: session.UserID,
				Panel:    panel,
				Groups:   app.groups,
				GroupTab: groups,
				Fetch:    fetch,
				Submit:   submit,
				Now:      app.now,
			})
		},
	}
}
