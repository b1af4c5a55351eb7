package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/beanscan/format"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/property"
)

func newPropertiesCmd(a *app) *cobra.Command {
	var outputFormat string
	var ignored, noColor bool

	cmd := &cobra.Command{
		Use:   "properties <type>...",
		Short: "Print the resolved properties of classes",
		Long: `Print the resolved properties of each named class in order.

A type may be parameterized, e.g. 'com.example.Page<com.example.Pet>', in
which case the class's type variables are resolved against the arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			enc, err := format.New(outputFormat, os.Stdout, format.Options{
				Color: !noColor && format.IsTerminal(os.Stdout),
			})
			if err != nil {
				return err
			}
			for _, arg := range args {
				doc, err := resolveType(resolver, arg, ignored)
				if err != nil {
					return err
				}
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode %s: %w", outputFormat, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", fmt.Sprintf("output format %v", format.Names()))
	cmd.Flags().BoolVar(&ignored, "ignored", false, "include ignored properties")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func resolveType(resolver *property.Resolver, name string, ignored bool) (*format.Document, error) {
	t, err := java.ParseType(name)
	if err != nil {
		return nil, fmt.Errorf("parse type: %w", err)
	}
	class := resolver.Index().Lookup(t.ClassName())
	if t.Kind == java.TypeVariable {
		if matches := resolver.Index().FindBySimpleName(t.Name); len(matches) == 1 {
			class, t = matches[0], nil
		}
	}
	if class == nil {
		return nil, fmt.Errorf("class %s not found in classpath", name)
	}
	props := resolver.Resolve(class, property.Context{Reference: t})
	return format.NewDocument(class, props, ignored), nil
}
