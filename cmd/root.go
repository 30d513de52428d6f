package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinkerbelle-io/tb-blkdev/internal/config"
	"github.com/tinkerbelle-io/tb-blkdev/internal/logging"
	"github.com/tinkerbelle-io/tb-blkdev/internal/report"
	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner"
)

// options holds the persistent flags. Empty values defer to the config file
// and environment.
type options struct {
	config   string
	logLevel string
	platform string
	output   string
}

// newRootCmd builds the command tree around the runner used for native tools.
func newRootCmd(version string, runner scanner.CommandRunner) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tb-blkdev [index]",
		Short: "List block devices and their partitions",
		Long: `tb-blkdev lists the disks of this machine with human-readable sizes,
using the platform's own inventory tool (lsblk, diskpart or diskutil).

Without arguments every disk is listed. Given a device index from that
listing, the device and its partitions are shown.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, runner, args)
		},
	}

	root.PersistentFlags().StringVar(&opts.config, "config", "", "Config file path (env: TB_BLKDEV_CONFIG, default: "+config.DefaultConfigFile+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: TB_BLKDEV_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&opts.platform, "platform", "", "Platform: auto, linux, windows, darwin, hosted (env: TB_BLKDEV_PLATFORM)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json, yaml (env: TB_BLKDEV_OUTPUT)")

	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("tb-blkdev %s\n", version))
	root.AddCommand(newVersionCmd(), newPlatformCmd(opts))
	return root
}

// Execute runs the root command against the local host.
func Execute(version string) {
	root := newRootCmd(version, scanner.LocalRunner{})
	root.SetArgs(indexArgs(os.Args[1:]))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, opts *options, runner scanner.CommandRunner, args []string) error {
	index, selected, err := parseIndexArg(args)
	if err != nil {
		return err
	}

	cfg, err := opts.load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	inv, err := buildInventory(cfg, runner)
	if err != nil {
		return err
	}

	out := report.NewWriter(cmd.OutOrStdout(), format)
	ctx := cmd.Context()

	if !selected {
		devices, err := inv.ListDevices(ctx)
		if err != nil {
			return fmt.Errorf("list devices: %w", err)
		}
		return out.Devices(devices)
	}

	dev, partitions, err := scanner.DevicePartitions(ctx, inv, index)
	if err != nil {
		return err
	}
	return out.Partitions(dev, partitions)
}

// load reads the config and applies flag overrides on top.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.platform != "" {
		cfg.Platform = o.platform
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildInventory is the single place the platform is chosen.
func buildInventory(cfg *config.Config, runner scanner.CommandRunner) (scanner.Inventory, error) {
	platform, err := scanner.ParsePlatform(cfg.Platform)
	if err != nil {
		return nil, err
	}
	slog.Debug("selected platform", "platform", platform, "tool", platform.Tool())

	return scanner.NewInventory(platform, runner, scanner.Tools{
		Lsblk:    cfg.Tools.Lsblk,
		Diskpart: cfg.Tools.Diskpart,
		Diskutil: cfg.Tools.Diskutil,
	})
}

// indexArgs moves a negative device index behind "--" so the flag parser
// keeps it as a positional argument instead of a shorthand flag.
func indexArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, err := strconv.Atoi(arg); err != nil {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, args[i+1:]...)
		return append(out, "--", arg)
	}
	return args
}

// parseIndexArg returns the requested device index, if any.
func parseIndexArg(args []string) (int, bool, error) {
	if len(args) == 0 {
		return 0, false, nil
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid device index %q: must be an integer", args[0])
	}
	return index, true, nil
}
