package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bjaus/textview"
	"github.com/spf13/cobra"
)

func main() {
	if err := cmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdRoot() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "textview",
		Short: "Render hierarchical tables as text or HTML",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			quiet, _ := cmd.Flags().GetBool("quiet")
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			} else if quiet {
				level = slog.LevelError
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	cmd.PersistentFlags().Bool("debug", false, "log debugging information")
	cmd.PersistentFlags().Bool("quiet", false, "log errors only")
	cmd.AddCommand(cmdRender())
	cmd.AddCommand(cmdFormats())
	return cmd
}

func cmdRender() *cobra.Command {
	format := textview.CSVFlat.String()
	var configFile string
	var cmd = &cobra.Command{
		Use:          "render <model-file>",
		Short:        "render a YAML or JSON model file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := textview.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg := textview.DefaultConfig(f)
			if configFile != "" {
				data, err := os.ReadFile(configFile)
				if err != nil {
					return err
				}
				if cfg, err = textview.LoadConfig(f, data); err != nil {
					return fmt.Errorf("%s: %w", configFile, err)
				}
			}

			fd, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fd.Close()
			model, err := textview.LoadModel(fd)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			q := textview.NewQueue()
			v := textview.NewView(q, f, textview.WithConfig(cfg), textview.WithLogger(slog.Default()))
			v.SetSource(model)
			q.RunPending()
			if err := v.Err(); err != nil {
				return err
			}
			slog.Debug("render", "model", args[0], "format", f, "renders", v.Renders())

			text := v.Text()
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", format, "output format")
	cmd.Flags().StringVarP(&configFile, "config", "c", configFile, "load render configuration from file")
	return cmd
}

func cmdFormats() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "list the output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range textview.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		},
	}
}
