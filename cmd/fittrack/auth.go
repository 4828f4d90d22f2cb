package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ogould/fittrack/internal/session"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readNewPassword()
		if err != nil {
			return err
		}

		user, err := authService.Register(args[0], password, false)
		if err != nil {
			return err
		}

		if err := sessions.Save(session.Session{
			UserID:   user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		}); err != nil {
			return err
		}

		color.Green("✓ Account %q created", user.Username)
		fmt.Println("Run 'fittrack setup' to enter your body metrics.")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := authService.Login(args[0], password)
		if err != nil {
			return err
		}

		completed, err := profileService.HasCompletedSetup(user.ID)
		if err != nil {
			return err
		}

		if err := sessions.Save(session.Session{
			UserID:            user.ID,
			Username:          user.Username,
			IsAdmin:           user.IsAdmin,
			HasCompletedSetup: completed,
		}); err != nil {
			return err
		}

		color.Green("✓ Logged in as %s", user.Username)
		if !completed {
			fmt.Println("Setup incomplete. Run 'fittrack setup' first.")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessions.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		fmt.Println(current.Username)
		if current.IsAdmin {
			fmt.Println(color.New(color.Faint).Sprint("admin"))
		}
		return nil
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		password, err := readNewPassword()
		if err != nil {
			return err
		}
		if err := authService.ChangePassword(current.UserID, password); err != nil {
			return err
		}

		color.Green("✓ Password updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, passwordCmd)
}
