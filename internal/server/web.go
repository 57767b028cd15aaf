package server

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"
	"strings"
)

//go:embed templates/* static/*
var contentFS embed.FS

var templateFuncs = template.FuncMap{
	// css marks compiled-in style values (gradients, shadows) as trusted.
	"css":   func(s string) template.CSS { return template.CSS(s) },
	"join":  strings.Join,
	"lower": strings.ToLower,
	"pct":   func(v float64) string { return strconvFloat(v, 2) + "%" },
	"px":    func(v float64) string { return strconvFloat(v, 2) + "px" },
	"secs":  func(v float64) string { return strconvFloat(v, 2) + "s" },
	"slug": func(s string) string {
		return strings.NewReplacer(" ", "-", "&", "and").Replace(strings.ToLower(s))
	},
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(contentFS, "templates/*.html")
}

func staticFS() fs.FS {
	sub, err := fs.Sub(contentFS, "static")
	if err != nil {
		panic(err) // static/ is embedded at build time
	}
	return sub
}

func strconvFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
