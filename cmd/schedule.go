package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newScheduleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect and manage schedules",
	}

	cmd.AddCommand(
		newScheduleDayCmd(app),
		newScheduleAddCmd(app),
		newScheduleEditCmd(app),
		newScheduleDeleteCmd(app),
	)

	return cmd
}

func newScheduleDayCmd(app *app) *cobra.Command {
	var groupID int64

	cmd := &cobra.Command{
		Use:   "day <date>",
		Short: "Show the schedule detail for one day (personal or group)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("group") {
				groupID = app.groups.Current().GroupID
			}

			query := domain.ScheduleQuery{
				MemberID: session.UserID,
				Date:     args[0],
				GroupID:  groupID,
			}
			if err := query.Validate(); err != nil {
				return err
			}

			var schedules []domain.Schedule
			if err := fetchInto(cmd.Context(), app, api.DetailRequest(query), &schedules); err != nil {
				return fmt.Errorf("fetch day detail: %w", err)
			}

			if len(schedules) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no schedules\n", query.Date)
				return nil
			}
			for _, schedule := range schedules {
				schedule = schedule.NormalizeID()
				marker := " "
				if schedule.IsPrivate {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\t%s\t%s → %s\n",
					marker, schedule.ID, schedule.Title, schedule.StartTime, schedule.EndTime)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&groupID, "group", domain.PersonalGroupID, "Group ID (-1 for the personal calendar)")

	return cmd
}

func scheduleFlags(cmd *cobra.Command, schedule *domain.Schedule) {
	cmd.Flags().StringVar(&schedule.Title, "title", "", "Schedule title")
	cmd.Flags().StringVar(&schedule.Description, "description", "", "Description")
	cmd.Flags().StringVar(&schedule.Location, "location", "", "Location")
	cmd.Flags().StringVar(&schedule.StartTime, "start", "", "Start (2006-01-02T15:04:05)")
	cmd.Flags().StringVar(&schedule.EndTime, "end", "", "End (2006-01-02T15:04:05)")
	cmd.Flags().StringVar(&schedule.Color, "color", "", "Hex color, e.g. #aabbcc")
	cmd.Flags().BoolVar(&schedule.IsPrivate, "private", false, "Hide details from group members")
}

func newScheduleAddCmd(app *app) *cobra.Command {
	var schedule domain.Schedule

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a schedule to the personal calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}
			if err := schedule.Validate(); err != nil {
				return err
			}

			if err := fetchInto(cmd.Context(), app, api.AddScheduleRequest(session.UserID, schedule), nil); err != nil {
				return fmt.Errorf("add schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", schedule.Title)
			return nil
		},
	}

	scheduleFlags(cmd, &schedule)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleEditCmd(app *app) *cobra.Command {
	var schedule domain.Schedule

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}
			if schedule.ID == 0 {
				return fmt.Errorf("%w: schedule id is required", domain.ErrValidation)
			}
			if err := schedule.Validate(); err != nil {
				return err
			}

			if err := fetchInto(cmd.Context(), app, api.ModifyScheduleRequest(session.UserID, schedule), nil); err != nil {
				return fmt.Errorf("edit schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated schedule %d\n", schedule.ID)
			return nil
		},
	}

	scheduleFlags(cmd, &schedule)
	cmd.Flags().Int64Var(&schedule.ID, "id", 0, "Schedule ID")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleDeleteCmd(app *app) *cobra.Command {
	var scheduleID int64
	var force bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			if !force {
				confirmed, err := app.notifier.ConfirmDeletion(fmt.Sprintf("schedule %d", scheduleID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
			}

			if err := fetchInto(cmd.Context(), app, api.DeleteScheduleRequest(scheduleID), nil); err != nil {
				return fmt.Errorf("delete schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted schedule %d\n", scheduleID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&scheduleID, "id", 0, "Schedule ID")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
