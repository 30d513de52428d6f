package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"
	"github.com/tinkerbelle-io/tb-blkdev/internal/logging"
	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner"
)

func newPlatformCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show the detected platform and the inventory tool it uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			platform, platformErr := scanner.ParsePlatform(cfg.Platform)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Platform:  %s\n", platform)
			fmt.Fprintf(out, "Tool:      %s\n", platform.Tool())
			fmt.Fprintf(out, "Runtime:   %s/%s\n", runtime.GOOS, runtime.GOARCH)

			info, err := host.InfoWithContext(cmd.Context())
			if err != nil {
				slog.Debug("host info unavailable", "error", err)
			}
			printHostInfo(out, info)

			return platformErr
		},
	}
}

func printHostInfo(out io.Writer, info *host.InfoStat) {
	if info == nil {
		info = &host.InfoStat{}
	}

	hostDesc := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if info.PlatformFamily != "" && info.PlatformFamily != info.Platform {
		hostDesc += " (" + info.PlatformFamily + ")"
	}

	fmt.Fprintf(out, "Hostname:  %s\n", valueOrNA(info.Hostname))
	fmt.Fprintf(out, "Host:      %s\n", valueOrNA(hostDesc))
	fmt.Fprintf(out, "Kernel:    %s\n", valueOrNA(info.KernelVersion))
}

func valueOrNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
