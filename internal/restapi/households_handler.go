package restapi

import (
	"net/http"

	"incomeviz.dev/internal/models"
	"incomeviz.dev/internal/utils"
)

func (api *RestAPI) householdsHandler(w http.ResponseWriter, r *http.Request) {
	table, err := api.Dataset.Table(r.Context())
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	references := models.NewReferences(table.Categories(), table.WarningMessages())
	api.sendResponse(w, r, models.NewListResponse(models.NewHouseholdTypes(table), references))
}

// householdHandler answers with the filtered rows and both series. An unknown
// household type is an empty entry, not a 404.
func (api *RestAPI) householdHandler(w http.ResponseWriter, r *http.Request) {
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

	table, err := api.Dataset.Table(r.Context())
	if err != nil {
		api.datasetErrorResponse(w, r, err)
		return
	}

	references := models.NewReferences(table.Categories(), table.WarningMessages())
	api.sendResponse(w, r, models.NewEntryResponse(models.NewHouseholdView(view), references))
}
