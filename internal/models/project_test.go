package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestProjectPricing(t *testing.T) {
	tests := []struct {
		name       string
		project    Project
		wantErr    error
		wantType   BudgetType
		wantAmount float64
	}{
		{
			name:       "Fixed budget",
			project:    Project{BudgetType: BudgetFixed, Budget: floatPtr(1500)},
			wantType:   BudgetFixed,
			wantAmount: 1500,
		},
		{
			name:       "Hourly rate",
			project:    Project{BudgetType: BudgetHourly, HourlyRate: floatPtr(85)},
			wantType:   BudgetHourly,
			wantAmount: 85,
		},
		{
			name:    "Fixed without budget",
			project: Project{BudgetType: BudgetFixed},
			wantErr: ErrBudgetMissing,
		},
		{
			name:    "Hourly without rate",
			project: Project{BudgetType: BudgetHourly, Budget: floatPtr(1000)},
			wantErr: ErrBudgetMissing,
		},
		{
			name:    "Fixed with both fields",
			project: Project{BudgetType: BudgetFixed, Budget: floatPtr(1000), HourlyRate: floatPtr(50)},
			wantErr: ErrBudgetAmbiguous,
		},
		{
			name:    "Hourly with both fields",
			project: Project{BudgetType: BudgetHourly, Budget: floatPtr(1000), HourlyRate: floatPtr(50)},
			wantErr: ErrBudgetAmbiguous,
		},
		{
			name:    "Unknown budget type",
			project: Project{BudgetType: "weekly", Budget: floatPtr(1000)},
			wantErr: ErrBadBudgetType,
		},
		{
			name:    "Empty budget type",
			project: Project{Budget: floatPtr(1000)},
			wantErr: ErrBadBudgetType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing, err := tt.project.Pricing()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, tt.project.ValidateBudget(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, pricing.Type)
			assert.Equal(t, tt.wantAmount, pricing.Amount)
			assert.NoError(t, tt.project.ValidateBudget())
		})
	}
}
