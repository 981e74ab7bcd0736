// xplainable-mcp serves the Xplainable platform client as an MCP server
// and carries the maintenance commands for the client-to-tools sync
// workflow.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/tools"
)

const usage = `Usage: xplainable-mcp <command> [flags]

Commands:
  serve            Run the MCP server (default)
  list-tools       List registered tools
  validate-config  Validate the configuration and exit
  test-connection  Verify platform connectivity with the configured key
  generate-docs    Render markdown tool reference documentation
  sync             Sync MCP tools with the platform client
  version          Print version information

Run 'xplainable-mcp <command> -h' for command flags.
`

func main() {
	// Local development convenience; missing .env files are not an error.
	_ = godotenv.Load()

	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && args[0][0] != '-' {
		command = args[0]
		args = args[1:]
	}

	var err error
	switch command {
	case "serve":
		err = runServe(args)
	case "list-tools":
		err = runListTools(args)
	case "validate-config":
		err = runValidateConfig(args)
	case "test-connection":
		err = runTestConnection(args)
	case "generate-docs":
		err = runGenerateDocs(args)
	case "sync":
		err = runSync(args)
	case "version":
		fmt.Println(common.GetFullVersion())
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "xplainable-mcp: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads TOML config and environment overrides, failing fast on
// invalid settings.
func loadConfig(path string) (*common.Config, error) {
	var paths []string
	if path != "" {
		paths = append(paths, path)
	} else {
		paths = append(paths, "xplainable-mcp.toml", "config.toml")
	}
	cfg, err := common.LoadConfig(paths...)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildServer assembles the MCP server with all tools registered.
func buildServer(cfg *common.Config, logger *common.Logger) (*server.MCPServer, *tools.Registrar) {
	srv := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	reg := tools.NewRegistrar(srv, registry.New(cfg.EnableWriteTools), tools.NewDeps(cfg, logger))
	tools.RegisterAll(reg)
	return srv, reg
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	stdio := fs.Bool("stdio", false, "serve over stdio instead of HTTP")
	port := fs.String("port", "", "HTTP listen port (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	srv, reg := buildServer(cfg, logger)

	snap := reg.Registry().Snapshot()
	logger.Info().
		Str("version", common.GetFullVersion()).
		Int("tools", snap.TotalTools).
		Bool("write_tools", cfg.EnableWriteTools).
		Msg("Starting xplainable-mcp")
	if !cfg.EnableWriteTools {
		logger.Info().Msg("Write tools are disabled, set ENABLE_WRITE_TOOLS=true to expose them")
	}

	if *stdio {
		logger.Info().Msg("Serving MCP over stdio")
		return server.ServeStdio(srv)
	}

	addr := ":" + cfg.Server.Port
	logger.Info().Str("addr", addr).Msg("Serving MCP over streamable HTTP")
	httpServer := server.NewStreamableHTTPServer(srv)
	return httpServer.Start(addr)
}
