package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"swarmscraper/pkg/auth"
	"swarmscraper/pkg/ui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Foursquare OAuth tokens",
	Long: `Manage stored Foursquare OAuth tokens.

Tokens are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (SWARM_OAUTH_TOKEN, read-only)

Never share your tokens or config files!`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login [profile]",
	Short: "Store an OAuth token securely",
	Long: `Store a Foursquare OAuth token under a profile name (default "default").

To get a token, log into foursquare.com or the Swarm app in your browser
and copy the oauth_token value from an API request in the network inspector.`,
	Example: `  swarmscraper auth login
  swarmscraper auth login personal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthLogin,
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runAuthList,
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove <profile>",
	Short: "Remove a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthRemove,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authListCmd)
	authCmd.AddCommand(authRemoveCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}

	name := "default"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Print("OAuth token: ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("User ID (press Enter for the token's own identity): ")
	userID, _ := reader.ReadString('\n')
	userID = strings.TrimSpace(userID)

	profile := &auth.Profile{
		Name:       name,
		OAuthToken: token,
		UserID:     userID,
	}
	if err := manager.Store(profile); err != nil {
		return err
	}

	ui.PrintSuccess("Stored token for profile %q", name)
	return nil
}

func runAuthList(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}

	profiles, err := manager.List()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		ui.PrintInfo("No stored profiles. Run 'swarmscraper auth login'.")
		return nil
	}

	ui.PrintHeader("Stored Profiles")
	for _, p := range profiles {
		masked := auth.Sanitize(p)
		line := fmt.Sprintf("%s  token %s", masked.Name, masked.OAuthToken)
		if masked.UserID != "" {
			line += fmt.Sprintf("  user %s", masked.UserID)
		}
		if !masked.LastModified.IsZero() {
			line += fmt.Sprintf("  (updated %s)", masked.LastModified.Format("2006-01-02"))
		}
		ui.PrintInfo("%s", line)
	}
	fmt.Println()
	return nil
}

func runAuthRemove(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}

	if err := manager.Delete(args[0]); err != nil {
		return err
	}
	ui.PrintSuccess("Removed profile %q", args[0])
	return nil
}
