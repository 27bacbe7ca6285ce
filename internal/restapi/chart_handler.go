package restapi

import (
	"bytes"
	"errors"
	"net/http"

	"incomeviz.dev/internal/chart"
	"incomeviz.dev/internal/utils"
)

func (api *RestAPI) householdChartHandler(w http.ResponseWriter, r *http.Request) {
	householdType := utils.ExtractParam(r, "type")
	rawMetric := utils.ExtractParam(r, "metric")

	if fieldErrors := utils.ValidateSelection(householdType, rawMetric); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	metric, _ := utils.ParseMetric(rawMetric)

	view, err := api.Dataset.Select(r.Context(), householdType)
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = chart.RenderSVG(&buf, householdType, chart.Metric(metric), chart.SeriesFor(view, chart.Metric(metric)), chart.DefaultOptions())
	if errors.Is(err, chart.ErrNoData) {
		api.sendNotFound(w, r, "no "+metric+" values for household type")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := buf.WriteTo(w); err != nil {
		api.Logger.Error("failed to write chart", "error", err)
	}
}
