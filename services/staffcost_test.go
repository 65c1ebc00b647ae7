package services

import (
	"math"
	"testing"
)

func TestCalcStaffCosts(t *testing.T) {
	tests := []struct {
		name          string
		teachers      []TeacherInput
		coordinators  []CoordinatorInput
		teachingHours float64
		workdays      int
		expectLines   []CostLine
		expectTotal   float64
	}{
		{
			name:          "single teacher",
			teachers:      []TeacherInput{{Name: "A. Haddad", HourlyRate: 100}},
			teachingHours: 6,
			workdays:      5,
			expectLines:   []CostLine{{Name: "A. Haddad", Cost: 3000}},
			expectTotal:   3000,
		},
		{
			name: "unpriced teacher stays in breakdown at zero",
			teachers: []TeacherInput{
				{Name: "A. Haddad", HourlyRate: 100},
				{Name: "New Hire", HourlyRate: 0},
			},
			teachingHours: 6,
			workdays:      5,
			expectLines: []CostLine{
				{Name: "A. Haddad", Cost: 3000},
				{Name: "New Hire", Cost: 0},
			},
			expectTotal: 3000,
		},
		{
			name: "enabled coordinator costs daily rate times workdays",
			coordinators: []CoordinatorInput{
				{Name: "S. Rahman", DailyRate: 250, Enabled: true},
			},
			workdays:    5,
			expectLines: []CostLine{{Name: "S. Rahman", Cost: 1250}},
			expectTotal: 1250,
		},
		{
			name: "disabled coordinator excluded from breakdown and sum",
			coordinators: []CoordinatorInput{
				{Name: "S. Rahman", DailyRate: 250, Enabled: true},
				{Name: "On Leave", DailyRate: 300, Enabled: false},
			},
			workdays:    5,
			expectLines: []CostLine{{Name: "S. Rahman", Cost: 1250}},
			expectTotal: 1250,
		},
		{
			name:     "teachers before coordinators in breakdown",
			teachers: []TeacherInput{{Name: "A. Haddad", HourlyRate: 80}},
			coordinators: []CoordinatorInput{
				{Name: "S. Rahman", DailyRate: 200, Enabled: true},
			},
			teachingHours: 4,
			workdays:      10,
			expectLines: []CostLine{
				{Name: "A. Haddad", Cost: 3200},
				{Name: "S. Rahman", Cost: 2000},
			},
			expectTotal: 5200,
		},
		{
			name:          "zero workdays zeroes everything",
			teachers:      []TeacherInput{{Name: "A. Haddad", HourlyRate: 100}},
			coordinators:  []CoordinatorInput{{Name: "S. Rahman", DailyRate: 250, Enabled: true}},
			teachingHours: 6,
			workdays:      0,
			expectLines: []CostLine{
				{Name: "A. Haddad", Cost: 0},
				{Name: "S. Rahman", Cost: 0},
			},
			expectTotal: 0,
		},
		{
			name:        "no staff",
			expectLines: nil,
			expectTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, total := CalcStaffCosts(tt.teachers, tt.coordinators, tt.teachingHours, tt.workdays)
			if len(lines) != len(tt.expectLines) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.expectLines))
			}
			for i, line := range lines {
				if line.Name != tt.expectLines[i].Name {
					t.Errorf("line %d name = %q, want %q", i, line.Name, tt.expectLines[i].Name)
				}
				if math.Abs(line.Cost-tt.expectLines[i].Cost) > 0.001 {
					t.Errorf("line %d cost = %v, want %v", i, line.Cost, tt.expectLines[i].Cost)
				}
			}
			if math.Abs(total-tt.expectTotal) > 0.001 {
				t.Errorf("total = %v, want %v", total, tt.expectTotal)
			}
		})
	}
}
