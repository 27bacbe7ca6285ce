package models

// ReferencesModel carries context shared by every entry of a response: the
// selectable household types and any schema warnings from the load.
type ReferencesModel struct {
	HouseholdTypes []string `json:"householdTypes"`
	Warnings       []string `json:"warnings"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		HouseholdTypes: []string{},
		Warnings:       []string{},
	}
}

func NewReferences(householdTypes, warnings []string) ReferencesModel {
	refs := NewEmptyReferences()
	if householdTypes != nil {
		refs.HouseholdTypes = householdTypes
	}
	if warnings != nil {
		refs.Warnings = warnings
	}
	return refs
}
