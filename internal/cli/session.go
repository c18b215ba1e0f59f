package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mockify/internal/services/nav"
)

// DemoUsername is the account demo-login signs in as
const DemoUsername = "demo"

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in locally (any username, password ignored)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) == 1 {
				username = args[0]
			}
			return login(cmd, username, password)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (not checked)")
	return cmd
}

func newDemoLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo-login",
		Short: "Log in as the demo user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login(cmd, DemoUsername, "")
		},
	}
}

func login(cmd *cobra.Command, username, password string) error {
	if _, err := app.Auth.Login(cmd.Context(), username, password); err != nil {
		return err
	}
	return printSession(cmd)
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSession(cmd)
		},
	}
}

func printSession(cmd *cobra.Command) error {
	loggedIn, err := app.Auth.IsLoggedIn(cmd.Context())
	if err != nil {
		return err
	}

	result := SessionResult{LoggedIn: loggedIn}
	if loggedIn {
		// a garbled session still counts as logged in, just without a user
		result.User, _ = app.Auth.CurrentUser(cmd.Context())
	}

	NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
	return nil
}

func newNavCmd() *cobra.Command {
	var modalOpen bool

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Show the navbar state for the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedIn, err := app.Auth.IsLoggedIn(cmd.Context())
			if err != nil {
				return err
			}

			state := nav.NavbarFor(loggedIn)
			modal := nav.CloseModal()
			if modalOpen {
				modal = nav.OpenModal()
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(NavResult{
				LoginButtonText: state.LoginButtonText,
				LoginAction:     string(state.LoginAction),
				DashboardHidden: state.DashboardHidden,
				ModalClasses:    modal.Classes(),
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&modalOpen, "modal-open", false, "Report the modal as opened")
	return cmd
}
