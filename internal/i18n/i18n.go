// Package i18n holds the display-text tables for the supported locales.
// The language preference affects only labels, never data shape.
package i18n

import "fmt"

// Language is a supported locale tag.
type Language string

const (
	English  Language = "en"
	Romanian Language = "ro"
)

// Default is the locale used when no preference has been stored.
const Default = English

// Parse validates a raw locale tag.
func Parse(raw string) (Language, error) {
	switch Language(raw) {
	case English, Romanian:
		return Language(raw), nil
	}
	return "", fmt.Errorf("unsupported language %q (supported: en, ro)", raw)
}

// Labels is the full set of localized strings for the export document.
type Labels struct {
	PilotProfile      string
	FlightLogbook     string
	GeneratedOn       string
	ExportID          string
	FirstName         string
	LastName          string
	Address           string
	MobilePhone       string
	LandlinePhone     string
	DateOfBirth       string
	CertificateNumber string
	Year              string
	Month             string
	Day               string
	Type              string
	Registration      string
	Route             string
	FlightTime        string
	Total             string
	Watermark         string
}

var labels = map[Language]Labels{
	English: {
		PilotProfile:      "Pilot Profile",
		FlightLogbook:     "Flight Logbook",
		GeneratedOn:       "Generated on",
		ExportID:          "Export ID",
		FirstName:         "First Name",
		LastName:          "Last Name",
		Address:           "Address",
		MobilePhone:       "Mobile Phone",
		LandlinePhone:     "Landline Phone",
		DateOfBirth:       "Date of Birth",
		CertificateNumber: "Certificate Number",
		Year:              "Year",
		Month:             "Month",
		Day:               "Day",
		Type:              "Type",
		Registration:      "Registration",
		Route:             "Route",
		FlightTime:        "Flight Time",
		Total:             "Total",
		Watermark:         "FREE PLAN - Upgrade at dronelogbook.ro",
	},
	Romanian: {
		PilotProfile:      "Profil Pilot",
		FlightLogbook:     "Jurnal de Zbor",
		GeneratedOn:       "Generat la",
		ExportID:          "ID Export",
		FirstName:         "Prenume",
		LastName:          "Nume",
		Address:           "Adresă",
		MobilePhone:       "Telefon Mobil",
		LandlinePhone:     "Telefon Fix",
		DateOfBirth:       "Data Nașterii",
		CertificateNumber: "Număr Certificat",
		Year:              "An",
		Month:             "Lună",
		Day:               "Zi",
		Type:              "Tip",
		Registration:      "Înmatriculare",
		Route:             "Traseu",
		FlightTime:        "Timp Zbor",
		Total:             "Total",
		Watermark:         "PLAN GRATUIT - Upgrade la dronelogbook.ro",
	},
}

var monthNames = map[Language][12]string{
	English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Romanian: {
		"Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
		"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
	},
}

// For returns the label table for lang, falling back to the default locale
// for unknown tags.
func For(lang Language) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[Default]
}

// MonthName returns the localized name for month (1-12), or "" when month is
// out of range.
func MonthName(month int, lang Language) string {
	if month < 1 || month > 12 {
		return ""
	}
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[Default]
	}
	return names[month-1]
}
