// Session commands: the simulated role-switch login.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trektrust/trektrust-backend/internal/app/model"
)

var loginCmd = &cobra.Command{
	Use:   "login <user|admin>",
	Short: "Log in as the seeded hiker or administrator",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current user",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	var role model.Role
	switch args[0] {
	case "user", "hiker":
		role = model.RoleUser
	case "admin":
		role = model.RoleAdmin
	default:
		return fmt.Errorf("unknown role %q (want user or admin)", args[0])
	}

	user, err := a.sessions.Login(cmd.Context(), role)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.sessions.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.sessions.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}
