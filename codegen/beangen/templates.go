package beangen

import (
	"embed"

	"goa.design/goa/v3/codegen/template"
)

const (
	metaT     = "meta"
	propertyT = "property"
	objectT   = "object"
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

var beanTemplates = &template.TemplateReader{FS: templateFS}
