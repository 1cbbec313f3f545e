package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"math-helper/internal/assets"
	"math-helper/internal/buttons"
	"math-helper/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var asYAML bool

type buttonRow struct {
	Ordinal int    `yaml:"ordinal"`
	Module  string `yaml:"module"`
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

type buttonReport struct {
	Title   string      `yaml:"title"`
	Count   int         `yaml:"count"`
	Buttons []buttonRow `yaml:"buttons"`
}

// buttonsCmd loads the tutorial buttons without a window and prints them.
var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Load the tutorial buttons and print the registry",
	Long: `Loads every Grade 1-2 tutorial button image from the asset root and prints
the resulting collection. Exits non-zero when any image is missing or unreadable.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel, cfg.Debug))

		set, err := buttons.NewGrade1TutorialButtons(
			assets.NewFSLoader(os.DirFS(cfg.AssetRoot)),
			buttons.WithLogger(log),
		)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report(set), asYAML)
	},
}

func init() {
	buttonsCmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of a table")
	rootCmd.AddCommand(buttonsCmd)
}

func report(f buttons.EnumerableButtonFactory) buttonReport {
	r := buttonReport{Title: f.TitleText(), Count: f.NumberOfButtons()}
	for _, b := range f.Buttons() {
		row := buttonRow{
			Ordinal: b.Ordinal(),
			Name:    b.Name(),
			File:    b.FileName(),
			X:       b.X(),
			Y:       b.Y(),
		}
		if mb, ok := b.(*buttons.Button); ok {
			row.Module = string(mb.Module())
		}
		row.Width, row.Height = b.Rendered().Size()
		r.Buttons = append(r.Buttons, row)
	}
	return r
}

func writeReport(w io.Writer, r buttonReport, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s (%d buttons)\n", r.Title, r.Count)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORD\tNAME\tFILE\tX\tY\tSIZE")
	for _, row := range r.Buttons {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%dx%d\n", row.Ordinal, row.Name, row.File, row.X, row.Y, row.Width, row.Height)
	}
	return tw.Flush()
}
