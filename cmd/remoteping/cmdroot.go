// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/siemens/remoteping/config"

	"github.com/miekg/dns"
	"github.com/spf13/cobra"
	"github.com/thediveo/lxkns/log"
)

var (
	indentation     *uint
	spinnerInterval *time.Duration
	workerNumber    *uint
	debug           *bool
	serverURL       *string
	envFiles        *[]string
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:           "remoteping [flags] command",
		Short:         "remoteping asks a ping server about the liveness of hosts and networks",
		Version:       "0.9",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			if *indentation > 80 {
				return fmt.Errorf("--indent width out of range [0..80]")
			}
			if *workerNumber < 1 || *workerNumber > 32 {
				return fmt.Errorf("--workers out of range [1..32]")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			if err := config.LoadDotEnv(*envFiles...); err != nil {
				return err
			}
			// Check the server configuration early, so that we can bail out
			// before rendering anything.
			if *serverURL != "" {
				_, err := config.Parse(*serverURL)
				return err
			}
			_, err := config.Resolve()
			return err
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	indentation = rootCmd.PersistentFlags().Uint(
		"indent", 3, "indentation width")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 5, "number of concurrent ping requests")
	serverURL = rootCmd.PersistentFlags().String(
		"server", "", "ping server base URL (overrides $"+config.ServerURLEnv+")")
	envFiles = rootCmd.PersistentFlags().StringSlice(
		"env-file", nil, "dotenv file(s) to load (default \""+config.DefaultDotEnv+"\" if present)")

	rootCmd.AddCommand(newHostCmd(), newNetCmd())
	return
}

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host [flags] address...",
		Short: "ping hosts by IP address or DNS name",
		Args:  cobra.MatchAll(cobra.MinimumNArgs(1), validHostArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ProbeAndReport(cmd.Context(), args, nil)
		},
	}
}

func newNetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "net [flags] network...",
		Short: "ping all hosts of IPv4 networks in CIDR notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ProbeAndReport(cmd.Context(), nil, args)
		},
	}
}

// validHostArgs checks that all args are either IP address literals or
// syntactically valid DNS names.
func validHostArgs(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, err := netip.ParseAddr(arg); err == nil {
			continue
		}
		if _, ok := dns.IsDomainName(arg); ok && arg != "" {
			continue
		}
		return fmt.Errorf("neither an IP address nor a DNS name: %q", arg)
	}
	return nil
}
