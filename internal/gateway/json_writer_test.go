package gateway

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"rental-ledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReportWriter_WriteReport(t *testing.T) {
	price := 3000
	tests := []struct {
		name   string
		report *domain.Report
		indent string
		want   string
	}{
		{
			name: "modifications",
			report: &domain.Report{
				Mode: domain.ModeModifications,
				RentalModifications: []domain.ModificationDelta{
					{ID: 1, RentalID: 1, Actions: []domain.Action{{Who: domain.ActorDriver, Type: domain.ActionTypeDebit, Amount: 4900}}},
				},
			},
			want: `{"rental_modifications":[{"id":1,"rental_id":1,"actions":[{"who":"driver","type":"debit","amount":4900}]}]}`,
		},
		{
			name: "commission",
			report: &domain.Report{
				Mode: domain.ModeCommission,
				Rentals: []domain.RentalReport{
					{ID: 1, Price: &price, Commission: &domain.Commission{InsuranceFee: 450, AssistanceFee: 100, PlatformFee: 350}},
				},
			},
			want: `{"rentals":[{"id":1,"price":3000,"commission":{"insurance_fee":450,"assistance_fee":100,"drivy_fee":350}}]}`,
		},
		{
			name:   "empty rentals keep their key",
			report: &domain.Report{Mode: domain.ModeActions},
			want:   `{"rentals":[]}`,
		},
		{
			name:   "indented",
			report: &domain.Report{Mode: domain.ModeModifications},
			indent: "  ",
			want:   "{\n  \"rental_modifications\": []\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			w := &JSONReportWriter{stdout: &stdout, indent: tt.indent}

			require.NoError(t, w.WriteReport(context.Background(), StdioPath, tt.report))
			assert.Equal(t, tt.want+"\n", stdout.String())
		})
	}
}

func TestJSONReportWriter_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	w := NewJSONReportWriter("")

	err := w.WriteReport(context.Background(), path, &domain.Report{Mode: domain.ModePrice})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rentals": []}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestJSONReportWriter_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.json")
	err := NewJSONReportWriter("").WriteReport(context.Background(), path, &domain.Report{Mode: domain.ModePrice})
	assert.Error(t, err)
}
