package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionUse bool

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage saved drafting sessions",
	Long: `A session holds the values and section edits for one deal. The default
session is loaded on every run; select another with --session.`,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionNewCmd = &cobra.Command{
	Use:   "new [name...]",
	Short: "Create an empty session",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSessionNew,
}

var sessionUseCmd = &cobra.Command{
	Use:   "use [id]",
	Short: "Make a session the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionUse,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	sessionNewCmd.Flags().BoolVar(&sessionUse, "use", false, "make the new session the default")
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionUseCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}

func requireSessions() error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	return nil
}

func defaultSession() string {
	if settingsService == nil {
		return ""
	}
	s, err := settingsService.Get()
	if err != nil {
		return ""
	}
	return s.DefaultSession
}

func runSessionList(cmd *cobra.Command, _ []string) error {
	if err := requireSessions(); err != nil {
		return err
	}

	sessions, err := sessionService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		cmd.Println("No saved sessions.")
		return nil
	}

	current := defaultSession()
	for i := range sessions {
		s := &sessions[i]
		mark := " "
		if s.ID == current {
			mark = "*"
		}
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		cmd.Printf("%s %s  %-24s %d values, %d edits, updated %s\n",
			mark, s.ID, name, len(s.Values), len(s.Overrides), s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runSessionNew(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}

	session, err := sessionService.Create(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	cmd.Printf("Created session %s (%s)\n", session.ID, session.Name)

	if sessionUse {
		return useSession(cmd, session.ID)
	}
	return nil
}

func runSessionUse(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}
	if _, err := sessionService.Get(cmd.Context(), args[0]); err != nil {
		return err
	}
	return useSession(cmd, args[0])
}

func useSession(cmd *cobra.Command, id string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetDefaultSession(id); err != nil {
		return fmt.Errorf("set default session: %w", err)
	}
	cmd.Printf("Default session is now %s\n", id)
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	if err := requireSessions(); err != nil {
		return err
	}

	id := args[0]
	if err := sessionService.Delete(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("Deleted session %s\n", id)

	if id == defaultSession() {
		if err := settingsService.SetDefaultSession(""); err != nil {
			return fmt.Errorf("clear default session: %w", err)
		}
	}
	return nil
}
