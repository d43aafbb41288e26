// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ezrec/hp15c/config"
	"github.com/ezrec/hp15c/mnemonic"
	"github.com/ezrec/hp15c/table"
)

type settings struct {
	config    string
	output    string
	simulator bool
	prefixKey bool
	ompl      bool
	verbose   bool
	format    string
}

// converter builds a converter from the settings file, then the flags
// given on the command line.
func (set *settings) converter(cmd *cobra.Command) (conv *mnemonic.Converter, err error) {
	cfg := config.Default()
	if len(set.config) != 0 {
		err = cfg.Load(set.config)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("simulator") {
		cfg.Listing.Simulator = set.simulator
	}
	if flags.Changed("prefix-key") {
		cfg.Listing.PrefixKey = set.prefixKey
	}
	if flags.Changed("ompl") {
		cfg.Listing.OneMnemonicPerLine = set.ompl
	}
	if flags.Changed("verbose") {
		cfg.Verbose = set.verbose
	}

	conv = mnemonic.NewConverter()
	cfg.Apply(conv)

	return
}

// readInput reads a file, or the command input for "" and "-".
func readInput(cmd *cobra.Command, path string) (text string, err error) {
	var data []byte
	if len(path) == 0 || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	text = string(data)
	return
}

// writeOutput writes to a file, or the command output for "" and "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) (err error) {
	if len(path) == 0 || path == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return
	}
	err = os.WriteFile(path, data, 0o644)
	return
}

// createOutput creates an output file.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// convertFile converts an input file into the output.
func convertFile(cmd *cobra.Command, conv *mnemonic.Converter, input string, output string) (err error) {
	text, err := readInput(cmd, input)
	if err != nil {
		return
	}

	err = writeOutput(cmd, output, []byte(conv.Convert(text)))
	return
}

// watch converts the input each time it is written, until the context ends.
func watch(ctx context.Context, cmd *cobra.Command, conv *mnemonic.Converter, input string, output string) (err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer watcher.Close()

	// Editors often replace a file, so the directory is watched.
	err = watcher.Add(filepath.Dir(input))
	if err != nil {
		return
	}

	err = convertFile(cmd, conv, input, output)
	if err != nil {
		log.Printf("%v: %v", input, err)
	}

	target := filepath.Clean(input)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if conv.Verbose {
				log.Printf("%v: %v", input, event.Op)
			}
			err = convertFile(cmd, conv, input, output)
			if err != nil {
				log.Printf("%v: %v", input, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func newRootCmd() *cobra.Command {
	set := &settings{}

	rootCmd := &cobra.Command{
		Use:           "hp15c [file]",
		Short:         "Convert HP-15C mnemonic programs to keycode listings",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conv, err := set.converter(cmd)
			if err != nil {
				return
			}

			var input string
			if len(args) != 0 {
				input = args[0]
			}

			err = convertFile(cmd, conv, input, set.output)
			return
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&set.config, "config", "c", "", "TOML settings file")
	flags.StringVarP(&set.output, "output", "o", "-", "Output file")
	flags.BoolVarP(&set.verbose, "verbose", "v", false, "Verbose mode")

	listing := rootCmd.Flags()
	listing.BoolVar(&set.simulator, "simulator", false, "Show dotted keycodes as the decimal point key")
	listing.BoolVar(&set.prefixKey, "prefix-key", true, "Show the f or g shift key before the mnemonic")
	listing.BoolVar(&set.ompl, "ompl", true, "One mnemonic per line, the rest of the line is a remark")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the command table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			format, err := table.ParseFormat(set.format)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			if len(set.output) != 0 && set.output != "-" {
				var ouf io.WriteCloser
				ouf, err = createOutput(set.output)
				if err != nil {
					return
				}
				defer func() {
					if cerr := ouf.Close(); err == nil {
						err = cerr
					}
				}()
				out = ouf
			}

			err = table.Default().Dump().Encode(out, format)
			return
		},
	}
	tableCmd.Flags().StringVar(&set.format, "format", table.FORMAT_JSON.String(), "Dump format: json or cbor")

	watchCmd := &cobra.Command{
		Use:   "watch file",
		Short: "Convert a file each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conv, err := set.converter(cmd)
			if err != nil {
				return
			}

			err = watch(cmd.Context(), cmd, conv, args[0], set.output)
			return
		},
	}
	watchCmd.Flags().AddFlagSet(listing)

	rootCmd.AddCommand(tableCmd, watchCmd)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hp15c: %v\n", err)
		stop()
		os.Exit(1)
	}
}
