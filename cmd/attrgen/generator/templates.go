package generator

import _ "embed"

//go:embed templates/attribute.go.tmpl
var attributeTemplate string
