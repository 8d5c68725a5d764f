package i18n

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"ro", Romanian, false},
		{"de", "", true},
		{"EN", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFor(t *testing.T) {
	t.Run("english labels", func(t *testing.T) {
		labels := For(English)
		if labels.FlightLogbook != "Flight Logbook" {
			t.Errorf("FlightLogbook = %q", labels.FlightLogbook)
		}
		if labels.Watermark != "FREE PLAN - Upgrade at dronelogbook.ro" {
			t.Errorf("Watermark = %q", labels.Watermark)
		}
	})

	t.Run("romanian labels", func(t *testing.T) {
		labels := For(Romanian)
		if labels.FlightLogbook != "Jurnal de Zbor" {
			t.Errorf("FlightLogbook = %q", labels.FlightLogbook)
		}
		if labels.Watermark != "PLAN GRATUIT - Upgrade la dronelogbook.ro" {
			t.Errorf("Watermark = %q", labels.Watermark)
		}
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		labels := For(Language("xx"))
		if labels.FlightLogbook != "Flight Logbook" {
			t.Errorf("FlightLogbook = %q", labels.FlightLogbook)
		}
	})
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		lang  Language
		want  string
	}{
		{1, English, "January"},
		{12, English, "December"},
		{1, Romanian, "Ianuarie"},
		{6, Romanian, "Iunie"},
		{0, English, ""},
		{13, English, ""},
	}
	for _, tt := range tests {
		if got := MonthName(tt.month, tt.lang); got != tt.want {
			t.Errorf("MonthName(%d, %q) = %q, want %q", tt.month, tt.lang, got, tt.want)
		}
	}
}
