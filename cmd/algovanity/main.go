package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"algovanity/internal/generator"
	"algovanity/internal/ops/verify"
	"algovanity/internal/store"
	"algovanity/pkg/appcfg"
	"algovanity/pkg/i18n"
	"algovanity/pkg/logx"
)

var (
	numberFlag uint64
	cpuFlag    int
)

func main() {
	appConf := loadAppConfig()

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		FilePath:             appConf.LogFile,
		ConsoleOnly:          appConf.LogFile == "",
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		os.Exit(1)
	}
	defer logx.Close()

	msg := i18n.Get(appConf.Language)

	rootCmd := &cobra.Command{
		Use:   "algovanity <start> <output>",
		Short: "Brute-force Algorand addresses that start with a chosen prefix",
		Long: `Produces valid Algorand addresses which begin with a set series of
characters. Prints the addresses and writes the addresses and recovery
phrases to a JSON file.

A prefix may only contain upper case letters A-Z and the numbers 2-7;
0, 1, 8 and 9 never appear in an address. Every extra character
multiplies the expected search time by 32.`,
		Example: `  algovanity ALGO results.json
  algovanity ALGO results.json --number 3
  algovanity ALGO results.json --cpu -1`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := cpuFlag
			if !cmd.Flags().Changed("cpu") && appConf.Cores != 0 {
				workers = appConf.Cores
			}
			resolved, err := generator.ResolveWorkers(workers, runtime.NumCPU())
			if err != nil {
				return err
			}

			if numberFlag > 0 {
				fmt.Printf(msg.SearchMany+"\n", resolved, numberFlag, args[0])
			} else {
				fmt.Printf(msg.SearchAll+"\n", resolved, args[0])
			}

			ctx := withInterrupt(cmd.Context())
			err = generator.Run(ctx, generator.Options{
				Prefix:  args[0],
				Output:  args[1],
				Number:  numberFlag,
				Workers: workers,
			})
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				fmt.Println(msg.Interrupted)
			} else {
				fmt.Println(msg.Done)
			}
			return nil
		},
	}
	rootCmd.Flags().Uint64VarP(&numberFlag, "number", "n", 0,
		"number of addresses to produce; 0 searches until interrupted")
	rootCmd.Flags().IntVarP(&cpuFlag, "cpu", "c", runtime.NumCPU(),
		"worker count; negative leaves that many cores unused")

	verifyCmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Re-derive every phrase in a results file and check its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := verify.Run(withInterrupt(cmd.Context()), verify.Options{Input: args[0]}); err != nil {
				return err
			}
			fmt.Printf(msg.VerifyOK+"\n", countRecords(args[0]), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	rootCmd.AddCommand(verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig reads configs/app.yaml when present; the tool runs on
// defaults without it.
func loadAppConfig() *appcfg.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return appcfg.Default()
	}
	conf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		return appcfg.Default()
	}
	return conf
}

func withInterrupt(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx
}

func countRecords(path string) int {
	all, err := store.Load(path)
	if err != nil {
		return 0
	}
	return len(all)
}
