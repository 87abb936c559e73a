package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hubfeed/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change hubfeed configuration.

Keys:
  github.token            personal access token
  github.base_url         API root for GitHub Enterprise
  display.default_avatar  avatar used for commits without a linked account
  display.per_page        default page size, 1-100
  languages.<Language>    colour override, e.g. languages.Go "#00ADD8"`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configured value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. When the value of github.token is omitted it
is read from the terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := ensureApp()
		if err != nil {
			return err
		}
		cmd.Println(svc.settings.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configUnsetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	keys := svc.settings.Keys()
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, _, err := svc.settings.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		values[key] = displayValue(key, value)
	}

	r := newRenderer(cmd)
	if r.json {
		return r.JSON(values)
	}

	if len(keys) == 0 {
		cmd.Println("No configuration set.")
		cmd.Printf("Config file: %s\n", svc.settings.Path())
		return nil
	}
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, values[key]})
	}
	r.Table([]string{"KEY", "VALUE"}, rows)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	value, ok, err := svc.settings.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	cmd.Println(displayValue(args[0], value))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == services.KeyToken:
		cmd.Print("Token: ")
		value = readSecret(cmd.InOrStdin())
		cmd.Println()
	default:
		return fmt.Errorf("missing value for %s", key)
	}

	if err := svc.settings.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}
	if err := svc.settings.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("Unset %s\n", args[0])
	return nil
}

// displayValue masks secrets.
func displayValue(key, value string) string {
	if key == services.KeyToken {
		return maskAPIKey(value)
	}
	return value
}

// readSecret reads one line from in without echo when in is a terminal.
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	input, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
