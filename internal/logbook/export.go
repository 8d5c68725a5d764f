package logbook

import (
	"fmt"
	"time"

	"dronelog-go/internal/i18n"
	"dronelog-go/internal/model"
)

// generatedAtLayout is the timestamp format stamped on every export.
const generatedAtLayout = "2006-01-02 15:04:05"

// BuildDocument assembles the structured export document from a profile and
// a record sequence. It performs no filtering: the entries must already be
// scoped and sorted chronologically by the caller. The watermark is present
// iff the plan is free.
func BuildDocument(
	profile model.PilotProfile,
	entries []model.FlightEntry,
	meta model.ExportMetadata,
	pro bool,
	lang i18n.Language,
) model.Document {
	labels := i18n.For(lang)

	fields := []model.DocumentField{
		{Label: labels.FirstName, Value: profile.FirstName},
		{Label: labels.LastName, Value: profile.LastName},
		{Label: labels.DateOfBirth, Value: profile.DateOfBirth.Format(time.DateOnly)},
		{Label: labels.CertificateNumber, Value: profile.CertificateNumber},
		{Label: labels.MobilePhone, Value: profile.MobilePhone},
	}
	if profile.LandlinePhone != "" {
		fields = append(fields, model.DocumentField{Label: labels.LandlinePhone, Value: profile.LandlinePhone})
	}
	fields = append(fields, model.DocumentField{Label: labels.Address, Value: profile.Address})

	rows := make([]model.DocumentRow, 0, len(entries))
	for _, e := range entries {
		year, month, day := DateParts(e.Date)
		rows = append(rows, model.DocumentRow{
			Year:         year,
			Month:        month,
			Day:          day,
			Type:         e.Type,
			Registration: e.Registration,
			Route:        e.Route,
			FlightTime:   MinutesToTime(e.TimeMinutes),
		})
	}

	doc := model.Document{
		Title:        labels.FlightLogbook,
		ProfileTitle: labels.PilotProfile,
		Profile:      fields,
		Columns: [7]string{
			labels.Year, labels.Month, labels.Day,
			labels.Type, labels.Registration, labels.Route, labels.FlightTime,
		},
		Rows:          rows,
		TotalLabel:    labels.Total,
		Total:         MinutesToTime(TotalMinutes(entries)),
		GeneratedNote: fmt.Sprintf("%s: %s (Europe/Bucharest)", labels.GeneratedOn, meta.GeneratedAt),
		ExportIDNote:  fmt.Sprintf("%s: %s", labels.ExportID, meta.ID),
		Metadata:      meta,
	}
	if !pro {
		doc.Watermark = labels.Watermark
	}
	return doc
}
