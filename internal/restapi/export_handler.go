package restapi

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"incomeviz.dev/internal/export"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (api *RestAPI) householdExportHandler(w http.ResponseWriter, r *http.Request) {
	householdType := utils.ExtractParam(r, "type")

	if fieldErrors := utils.ValidateSelection(householdType, ""); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view, err := api.Dataset.Select(r.Context(), householdType)
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, logging.FromContext(r.Context()), view); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s.xlsx", url.PathEscape(householdType)))
	if _, err := buf.WriteTo(w); err != nil {
		api.Logger.Error("failed to write workbook", "error", err)
	}
}
