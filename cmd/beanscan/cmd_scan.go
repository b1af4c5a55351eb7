package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/beanscan/format"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/property"
)

func newScanCmd(a *app) *cobra.Command {
	var outputFormat string
	var packages []string
	var ignored, noColor, quiet bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Resolve the properties of every class on the classpath",
		Args:  cobra.NoArgs,
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

			classes := scannable(resolver.Index(), packages)
			docs := make([]*format.Document, len(classes))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.config.Workers)
			for i, class := range classes {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					props := resolver.Resolve(class, property.Context{})
					docs[i] = format.NewDocument(class, props, ignored)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			total := 0
			for _, doc := range docs {
				total += len(doc.Properties)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode %s: %w", outputFormat, err)
				}
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "resolved %d classes, %d properties\n", len(docs), total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", fmt.Sprintf("output format %v", format.Names()))
	cmd.Flags().StringSliceVarP(&packages, "package", "p", nil, "only scan classes in these packages and their subpackages")
	cmd.Flags().BoolVar(&ignored, "ignored", false, "include ignored properties")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the summary")

	return cmd
}

// scannable lists the data classes worth resolving, sorted by name.
// Annotations, enums, synthetic and anonymous classes have no bean properties.
func scannable(index *java.Index, packages []string) []*java.ClassModel {
	var out []*java.ClassModel
	for _, c := range index.Classes() {
		switch c.Kind {
		case java.ClassKindAnnotation, java.ClassKindEnum:
			continue
		}
		if c.IsSynthetic || isAnonymous(c.SimpleName) || c.SimpleName == "module-info" || c.SimpleName == "package-info" {
			continue
		}
		if len(packages) > 0 && !inPackages(c.Package, packages) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func inPackages(pkg string, packages []string) bool {
	for _, p := range packages {
		if pkg == p || strings.HasPrefix(pkg, p+".") {
			return true
		}
	}
	return false
}

// isAnonymous reports names like Outer$1 given to anonymous and local classes.
func isAnonymous(simpleName string) bool {
	i := strings.LastIndexByte(simpleName, '$')
	return i >= 0 && i+1 < len(simpleName) && simpleName[i+1] >= '0' && simpleName[i+1] <= '9'
}
