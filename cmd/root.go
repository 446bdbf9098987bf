package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coca",
		Short:         "coca: browse and manage personal and group schedules",
		Long:          "coca is a terminal client for the COCA scheduling backend: log in, browse personal or group calendars, manage schedules, groups, tags and friends.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.notifier.SetOutput(cmd.ErrOrStderr())
		app.notifier.SetInput(cmd.InOrStdin())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newScheduleCmd(app),
		newGroupCmd(app),
		newTagCmd(app),
		newFriendCmd(app),
		newCalendarCmd(app),
	)

	return rootCmd
}
