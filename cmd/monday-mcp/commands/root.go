package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/compozy/monday-mcp/pkg/config"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// state carries the global flags and the configuration loaded from them
type state struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
	config     *config.Config
}

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:   "monday-mcp",
		Short: "MCP server exposing monday.com boards, items and docs as tools",
		Long: `monday-mcp is a Model Context Protocol server for monday.com. Each tool
call becomes one GraphQL query or mutation against the monday.com API and
the response is rendered as plain text for the model.

Tools cover:
  • Boards, groups and columns
  • Items, sub-items and updates
  • Workspace docs and doc blocks
  • Files attached to items and updates

Example workflow:
  1. Export your API token:   export MONDAY_API_KEY=...
  2. Inspect the catalog:     monday-mcp tools list
  3. Try a tool directly:     monday-mcp call monday-list-boards --args '{"limit": 5}'
  4. Serve it to a client:    monday-mcp serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.configFile, "config", "", "config file (default is ./monday-mcp.yaml)")
	flags.StringVar(&st.envFile, "env-file", "", "dotenv file to load before reading the environment (default is ./.env)")
	flags.StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&st.logFormat, "log-format", "", "log format: text, json, logfmt")

	root.AddCommand(
		newServeCommand(st),
		newToolsCommand(st),
		newCallCommand(st),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cobra.CheckErr(NewRootCommand().Execute())
}

// load reads the dotenv file, the configuration and applies logging settings
func (st *state) load(cmd *cobra.Command) error {
	if err := loadEnvFile(st.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(viper.New(), st.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = st.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = st.logFormat
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	st.config = cfg
	return nil
}

// loadEnvFile loads an explicit dotenv file, or ./.env when it exists.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "path", path)
	return nil
}
