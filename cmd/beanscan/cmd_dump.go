package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/beanscan/format"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/java/scanner"
)

func newDumpCmd(a *app) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Dump the class models read from class files or archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var models []*java.ClassModel
			for _, filename := range args {
				if filepath.Ext(filename) == ".class" {
					model, err := java.ClassModelFromFile(filename)
					if err != nil {
						return fmt.Errorf("parse class file: %w", err)
					}
					models = append(models, model)
					continue
				}
				index, err := scanner.LoadIndex(filename)
				if err != nil {
					return err
				}
				models = append(models, index.Classes()...)
			}

			for _, model := range models {
				switch dumpFormat {
				case "json":
					if err := format.NewJSONModelEncoder(os.Stdout).Encode(model); err != nil {
						return fmt.Errorf("encode json: %w", err)
					}
				case "yaml":
					if err := format.NewYAMLModelEncoder(os.Stdout).Encode(model); err != nil {
						return fmt.Errorf("encode yaml: %w", err)
					}
				case "line":
					if err := format.NewLineModelEncoder(os.Stdout).Encode(model); err != nil {
						return fmt.Errorf("encode line: %w", err)
					}
				default:
					return fmt.Errorf("unknown format: %s (expected json, yaml, or line)", dumpFormat)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, yaml, line)")

	return cmd
}
