package render

import "html/template"

// documentTemplate is the print-oriented HTML layout of the export document.
// Every label in it is already localized by the document builder; the
// template only arranges structure.
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    @page { size: A4; margin: 20mm; }
    body { font-family: Arial, sans-serif; font-size: 10pt; line-height: 1.4; color: #1a1a1a; }
    h1 {
      font-size: 18pt; font-weight: 600; margin-bottom: 10mm;
      color: #3557B0; border-bottom: 2px solid #3557B0; padding-bottom: 5mm;
    }
    .profile-section { page-break-after: always; }
    .profile-field { margin-bottom: 4mm; }
    .profile-label {
      font-weight: 600; color: #424852; font-size: 9pt;
      text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 2mm;
    }
    .profile-value { font-size: 11pt; padding: 3mm; background: #f5f7fa; border-left: 3px solid #3557B0; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 5mm; }
    thead { background: #3557B0; color: white; }
    th { font-weight: 600; text-align: left; padding: 3mm; font-size: 9pt; text-transform: uppercase; }
    td { padding: 2.5mm 3mm; border-bottom: 1px solid #e5e7eb; }
    tbody tr:nth-child(even) { background: #f9fafb; }
    .total-row { font-weight: 600; background: #f5f7fa; border-top: 2px solid #3557B0; }
    .total-label { text-align: right; padding-right: 5mm; }
    .footer {
      border-top: 1px solid #e5e7eb; padding-top: 3mm; font-size: 8pt; color: #6b7280;
      display: flex; justify-content: space-between;
    }
    .watermark { color: #D7843A; font-weight: 600; }
    @media print {
      thead { display: table-header-group; }
      tr { page-break-inside: avoid; }
    }
  </style>
</head>
<body>
  <div class="profile-section">
    <h1>{{.ProfileTitle}}</h1>
{{- range .Profile}}
    <div class="profile-field">
      <div class="profile-label">{{.Label}}</div>
      <div class="profile-value">{{.Value}}</div>
    </div>
{{- end}}
  </div>

  <h1>{{.Title}}</h1>

  <table>
    <thead>
      <tr>
{{- range .Columns}}
        <th>{{.}}</th>
{{- end}}
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td>{{.Year}}</td>
        <td>{{.Month}}</td>
        <td>{{.Day}}</td>
        <td>{{.Type}}</td>
        <td>{{.Registration}}</td>
        <td>{{.Route}}</td>
        <td>{{.FlightTime}}</td>
      </tr>
{{- end}}
      <tr class="total-row">
        <td colspan="6" class="total-label">{{.TotalLabel}}:</td>
        <td>{{.Total}}</td>
      </tr>
    </tbody>
  </table>

  <div class="footer">
    <div>
      {{.GeneratedNote}}<br>
      {{.ExportIDNote}}
    </div>
{{- if .Watermark}}
    <div class="watermark">{{.Watermark}}</div>
{{- end}}
  </div>
</body>
</html>
`))
