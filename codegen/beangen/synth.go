package beangen

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/codegen/naming"
)

// formatPackage is the package clause prepended to the generated declarations
// so they can be formatted as a file.
const formatPackage = "package beangen\n"

// Sections returns the code sections generated for the bean: the meta-bean
// and builder factory, one section per property, then the dispatch,
// equality, hash and string methods.
func Sections(m *markers.BeanModel) []*codegen.SectionTemplate {
	d := buildBeanData(m)
	fm := map[string]any{"quote": strconv.Quote}
	sections := []*codegen.SectionTemplate{
		{
			Name:    "bean-meta",
			Source:  beanTemplates.Read(metaT),
			Data:    d,
			FuncMap: fm,
		},
	}
	for _, p := range d.Properties {
		sections = append(sections, &codegen.SectionTemplate{
			Name:    "bean-property-" + p.Name,
			Source:  beanTemplates.Read(propertyT),
			Data:    p,
			FuncMap: fm,
		})
	}
	return append(sections, &codegen.SectionTemplate{
		Name:    "bean-object",
		Source:  beanTemplates.Read(objectT),
		Data:    d,
		FuncMap: fm,
	})
}

// Synthesize returns the content of the generated region for the bean,
// including the blank lines separating it from the region markers. Lines are
// indented with tabs.
func Synthesize(m *markers.BeanModel) ([]string, error) {
	if err := naming.CheckCollisions(m); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(formatPackage)
	for _, s := range Sections(m) {
		if err := s.Write(&buf); err != nil {
			return nil, markers.Errorf(m.HeaderLine, "render %s: %v", s.Name, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, markers.Errorf(m.HeaderLine, "generated code for %s does not parse: %v", m.Name, err)
	}
	body := strings.TrimPrefix(string(src), formatPackage)
	body = strings.Trim(body, "\n")
	lines := []string{""}
	lines = append(lines, strings.Split(body, "\n")...)
	return append(lines, ""), nil
}
