package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/utils"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var dataTypes = []string{"stats", "config", "schema", "headers", "categories", "records", "label_rows", "warnings", "frame"}

type debugData struct {
	Title string
	Pre   string
	Links []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
		Links: dataTypes,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := utils.SanitizeInput(r.URL.Query().Get("dataType"))

	if dataType == "stats" {
		writeDebugData(w, "Dataset - Stats", webUI.Dataset.Stats())
		return
	}
	if dataType == "config" {
		cfg := webUI.Config
		cfg.ApiKeys = make([]string, len(webUI.Config.ApiKeys))
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = "********"
		}
		writeDebugData(w, "Application - Config", cfg)
		return
	}

	table, err := webUI.Dataset.Table(r.Context())
	if err != nil {
		writeDebugData(w, "Dataset - Load Error", map[string]string{
			"kind":  string(income.KindOf(err)),
			"error": err.Error(),
		})
		return
	}

	var data interface{}
	var title string

	switch dataType {
	case "schema":
		data = table.Schema
		title = "Dataset - Schema"
	case "headers":
		data = map[string]interface{}{
			"headers":    table.Headers,
			"numeric":    table.NumericColumns(),
			"has_mean":   table.HasColumn(table.Schema.MeanColumn),
			"has_median": table.HasColumn(table.Schema.MedianColumn),
		}
		title = "Dataset - Headers"
	case "categories":
		data = table.Categories()
		title = "Dataset - Household Types"
	case "records":
		data = table.Records
		title = "Dataset - Records"
	case "label_rows":
		data = table.LabelRows
		title = "Dataset - Label Rows"
	case "warnings":
		data = table.WarningMessages()
		title = "Dataset - Schema Warnings"
	case "frame":
		data = table.Frame().String()
		title = "Dataset - DataFrame"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stats, config, schema, headers, categories, records, label_rows, warnings, frame.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
