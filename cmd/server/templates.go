package main

import (
	"html/template"
	"path/filepath"

	"github.com/iceghosttth/bkalendar/internal/timetable"
)

// LoadTemplates parses the HTML templates for the shared week views
func LoadTemplates() *template.Template {
	funcs := template.FuncMap{
		"plus1": func(i int) int { return i + 1 },
		"rows": func() []int {
			rows := make([]int, 11)
			for i := range rows {
				rows[i] = i + 1
			}
			return rows
		},
		"cols": func() []int {
			cols := make([]int, 7)
			for i := range cols {
				cols[i] = i + 1
			}
			return cols
		},
		"periodStart": timetable.PeriodStart,
	}

	tmpl := template.New("").Funcs(funcs)
	files, err := filepath.Glob("web/templates/*.html")
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		tmpl = template.Must(tmpl.ParseFiles(f))
	}
	return tmpl
}
