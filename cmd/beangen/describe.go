package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/codegen/naming"
	"goa.design/beans/runtime/beans"
)

var describeHeaders = []string{"Property", "Field", "Type", "Style", "Key", "Getter", "Setter"}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe file...",
		Short: "Print the properties of the beans declared in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getenv)
			if err != nil {
				return err
			}
			return runDescribe(cmd.OutOrStdout(), cfg, args)
		},
	}
}

func runDescribe(out io.Writer, cfg config, paths []string) error {
	parser := markers.Parser{FieldPrefix: cfg.FieldPrefix}
	for _, path := range paths {
		src, err := readSourceFile(path)
		if err != nil {
			return err
		}
		model, err := parser.Parse(src.lines)
		if err != nil {
			var serr *markers.StructuralError
			if errors.As(err, &serr) {
				serr.File = path
			}
			return err
		}
		if model == nil {
			fmt.Fprintf(out, "%s: no bean definition\n", path)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n%s\n", path, beanSummary(model), describeTable(model))
	}
	return nil
}

func beanSummary(m *markers.BeanModel) string {
	kind := "mutable"
	if m.Immutable {
		kind = "immutable"
	}
	return fmt.Sprintf("%s (%s, %d properties)", m.TypeRef(), kind, len(m.Properties))
}

func describeTable(m *markers.BeanModel) string {
	rows := make([][]string, 0, len(m.Properties))
	for _, p := range m.Properties {
		rows = append(rows, []string{
			p.Name,
			p.FieldName,
			p.Type,
			p.Style.String(),
			strconv.Itoa(int(beans.DispatchKey(p.Name))),
			orDash(naming.Getter(p)),
			orDash(naming.Setter(m, p)),
		})
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(describeHeaders)
	t.SetAlign("left")
	return t.Render("grid")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
