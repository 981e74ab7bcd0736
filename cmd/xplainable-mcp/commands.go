package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/sync"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

// snapshotFor builds a tool inventory either from a live registration pass
// or from a static scan of the generated files.
func snapshotFor(source, toolsDir string, cfg *common.Config, logger *common.Logger) (registry.Snapshot, error) {
	switch source {
	case "runtime":
		_, reg := buildServer(cfg, logger)
		return reg.Registry().Discover()
	case "static":
		scanner := &registry.StaticScanner{Dir: toolsDir, WriteToolsEnabled: cfg.EnableWriteTools}
		return scanner.Discover()
	default:
		return registry.Snapshot{}, fmt.Errorf("unknown source %q, want runtime or static", source)
	}
}

func runListTools(args []string) error {
	fs := flag.NewFlagSet("list-tools", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	format := fs.String("format", "table", "output format: table, json, or markdown")
	source := fs.String("source", "runtime", "tool source: runtime or static")
	toolsDir := fs.String("tools-dir", "internal/tools", "generated tool files directory (static source)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	// Listing tools does not need a valid API key.
	if cfg.APIKey == "" {
		cfg.APIKey = "unused"
	}

	snap, err := snapshotFor(*source, *toolsDir, cfg, common.NewSilentLogger())
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "markdown":
		fmt.Print(registry.MarkdownDocs(snap))
		return nil
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOOL\tCATEGORY\tPARAMS\tENABLED")
		for _, info := range snap.Tools {
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", info.Name, info.Category, len(info.Parameters), info.Enabled)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d tools, %d enabled (%d read, %d write, %d admin, %d discovery), write tools enabled: %v\n",
			snap.TotalTools, snap.EnabledTools, snap.Summary.ReadTools, snap.Summary.WriteTools,
			snap.Summary.AdminTools, snap.Summary.DiscoveryTools, snap.Summary.WriteToolsEnabled)
		return nil
	default:
		return fmt.Errorf("unknown format %q, want table, json, or markdown", *format)
	}
}

func runValidateConfig(args []string) error {
	fs := flag.NewFlagSet("validate-config", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	fmt.Printf("Configuration valid.\n")
	fmt.Printf("  hostname:           %s\n", cfg.Hostname)
	fmt.Printf("  write tools:        %v\n", cfg.EnableWriteTools)
	fmt.Printf("  rate limiting:      %v\n", cfg.RateLimitEnabled)
	fmt.Printf("  server port:        %s\n", cfg.Server.Port)
	return nil
}

func runTestConnection(args []string) error {
	fs := flag.NewFlagSet("test-connection", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	timeout := fs.Duration("timeout", 30*time.Second, "connection timeout")
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

	logger := common.NewDefaultLogger()
	client, err := xplainable.NewClient(cfg.APIKey, cfg.Hostname, cfg.OrgID, cfg.TeamID, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Printf("Connected to %s\n", client.Hostname())
	fmt.Printf("  username:        %s\n", client.Session.Username)
	fmt.Printf("  api key expires: %s\n", client.Session.APIKeyExpires)
	fmt.Printf("  client version:  %s\n", xplainable.Version)
	return nil
}

func runGenerateDocs(args []string) error {
	fs := flag.NewFlagSet("generate-docs", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	source := fs.String("source", "runtime", "tool source: runtime or static")
	toolsDir := fs.String("tools-dir", "internal/tools", "generated tool files directory (static source)")
	output := fs.String("output", "", "write docs to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = "unused"
	}

	snap, err := snapshotFor(*source, *toolsDir, cfg, common.NewSilentLogger())
	if err != nil {
		return err
	}

	docs := registry.MarkdownDocs(snap)
	if *output == "" {
		fmt.Print(docs)
		return nil
	}
	if err := os.WriteFile(*output, []byte(docs), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote tool docs to %s\n", *output)
	return nil
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	clientDir := fs.String("client-dir", "internal/xplainable", "platform client source directory")
	toolsDir := fs.String("tools-dir", "internal/tools", "generated tool files directory")
	writeFiles := fs.Bool("write-files", false, "apply generated changes to the tool files")
	force := fs.Bool("force", false, "rewrite tool blocks even when unchanged")
	output := fs.String("output", "", "write the JSON report to this file")
	markdown := fs.String("markdown", "", "write the markdown report to this file")
	quiet := fs.Bool("quiet", false, "suppress the report on stdout")
	checkVersion := fs.Bool("check-version", false, "fetch the platform API version and compare")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := common.NewDefaultLogger()
	opts := sync.Options{
		ClientDir:         *clientDir,
		ToolsDir:          *toolsDir,
		WriteToolsEnabled: cfg.EnableWriteTools,
		WriteFiles:        *writeFiles,
		Force:             *force,
	}

	if *checkVersion {
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, err := xplainable.NewClient(cfg.APIKey, cfg.Hostname, cfg.OrgID, cfg.TeamID, logger)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := client.Misc.GetVersionInfo(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Could not fetch platform version, continuing without version check")
		} else {
			opts.PlatformAPIVersion = info.APIVersion
		}
	}

	report, err := sync.Run(opts, logger)
	if err != nil {
		return err
	}

	if *output != "" {
		raw, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*output, raw, 0o644); err != nil {
			return err
		}
	}
	if *markdown != "" {
		if err := os.WriteFile(*markdown, []byte(sync.Markdown(report)), 0o644); err != nil {
			return err
		}
	}
	if !*quiet {
		fmt.Print(sync.Markdown(report))
	}

	if !report.InSync {
		return fmt.Errorf("client and tools are out of sync: %d missing, %d extra",
			len(report.MissingTools), len(report.ExtraTools))
	}
	return nil
}
