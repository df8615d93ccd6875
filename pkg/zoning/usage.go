package zoning

import "fmt"

// UsageTranslation maps raw sheet usage labels to the catalog labels the
// use-conditions lookup expects.
type UsageTranslation map[string]string

// DefaultUsageTranslation is the translation table for the hospital data
// sets the importer was built around. Projects with other sheets supply
// their own table.
func DefaultUsageTranslation() UsageTranslation {
	return UsageTranslation{
		"IsolationRoom":            "Bed room",
		"PatientRoom":              "Bed room",
		"Aisle":                    "Corridors in the general care area",
		"Technical room":           "Stock, technical equipment, archives",
		"Washing":                  "WC and sanitary rooms in non-residential buildings",
		"Stairway":                 "Corridors in the general care area",
		"WC":                       "WC and sanitary rooms in non-residential buildings",
		"Storage":                  "Stock, technical equipment, archives",
		"Lounge":                   "Meeting, Conference, seminar",
		"Office":                   "Meeting, Conference, seminar",
		"Treatment room":           "Examination- or treatment room",
		"StorageChemical":          "Stock, technical equipment, archives",
		"EquipmentServiceAndRinse": "WC and sanitary rooms in non-residential buildings",
	}
}

// UnknownUsageTypeError reports a raw usage label missing from the
// translation table. This is a hard input-validation fault: an unmapped
// usage cannot be matched to catalog boundary conditions.
type UnknownUsageTypeError struct {
	Usage   string
	Cluster string
}

func (e *UnknownUsageTypeError) Error() string {
	return fmt.Sprintf("unknown usage type %q in cluster %q: not present in the usage translation table", e.Usage, e.Cluster)
}

// Translate maps a raw usage label through the table.
func (t UsageTranslation) Translate(usage, cluster string) (string, error) {
	mapped, ok := t[usage]
	if !ok {
		return "", &UnknownUsageTypeError{Usage: usage, Cluster: cluster}
	}
	return mapped, nil
}
