package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

func TestParseReminderType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ReminderType
		wantErr bool
	}{
		{name: "routine", input: "routine", want: types.ReminderTypeRoutine},
		{name: "vital", input: "vital", want: types.ReminderTypeVital},
		{name: "empty defaults to routine", input: "", want: types.ReminderTypeRoutine},
		{name: "case sensitive", input: "Vital", wantErr: true},
		{name: "unknown", input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseReminderType(tt.input)
			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestReminderType_Severity(t *testing.T) {
	gt.Value(t, types.ReminderTypeRoutine.Severity()).Equal(types.SeverityInfo)
	gt.Value(t, types.ReminderTypeVital.Severity()).Equal(types.SeverityCritical)
}
