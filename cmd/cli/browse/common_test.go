package browse

import (
	"strings"
	"testing"
)

func TestPrintRecords(t *testing.T) {
	header := []string{"name", "site"}
	rows := [][]string{{"edge-fra-01", "fra"}}
	records := []map[string]string{{"name": "edge-fra-01", "site": "fra"}}

	cases := []struct {
		format  string
		wantErr string
	}{
		{"table", ""},
		{"json", ""},
		{"yaml", ""},
		{"xml", `unknown format "xml"`},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			err := printRecords(tc.format, header, rows, records)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("error printing records: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestPrintRecordsNoRows(t *testing.T) {
	if err := printRecords("table", []string{"name"}, nil, nil); err != nil {
		t.Fatalf("error printing empty table: %v", err)
	}
}
