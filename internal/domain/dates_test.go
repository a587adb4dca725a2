package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "padded", value: "2015-07-04", want: time.Date(2015, 7, 4, 0, 0, 0, 0, time.UTC)},
		{name: "non-padded day", value: "2015-12-8", want: time.Date(2015, 12, 8, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", value: "2016-02-29", want: time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "month out of range", value: "2015-13-01", wantErr: true},
		{name: "day out of range", value: "2015-02-30", wantErr: true},
		{name: "not a date", value: "yesterday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate("rentals[0].start_date", tt.value)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "rentals[0].start_date", verr.Field)
				assert.Equal(t, tt.value, verr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
