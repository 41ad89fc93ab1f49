package adapter

import (
	"testing"
)

func TestParseExportMode(t *testing.T) {
	cases := []struct {
		in      string
		want    ExportMode
		wantErr bool
	}{
		{in: "per-order", want: ModePerOrder},
		{in: "per-day", want: ModePerDay},
		{in: "", want: ModePerOrder},
		{in: "weekly", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseExportMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
