package services

// CostLine is a single named entry in a cost breakdown.
type CostLine struct {
	Name string
	Cost float64
}

// ServiceInput is one quote service line as fed into the aggregator.
type ServiceInput struct {
	ServiceID string
	Name      string
	TimeBasis TimeBasis
	CostPrice float64
	Enabled   bool
	IsDefault bool
	// ParticipantOverride applies only to enabled optional services; nil
	// means the full participant count.
	ParticipantOverride *int
}

// EffectiveParticipants returns the headcount a service line is scaled by.
// Default services always use the full count. An override larger than the
// participant count is accepted as entered; the editor flags it but the
// engine computes with the given value.
func (s ServiceInput) EffectiveParticipants(participantCount int) int {
	if s.IsDefault || s.ParticipantOverride == nil {
		return participantCount
	}
	return *s.ParticipantOverride
}

// CalcServiceCosts computes the cost line for every enabled service and the
// sum over them. Disabled services are left out of the breakdown entirely
// rather than shown as zero lines. Breakdown order follows the input
// (catalog) order, so repeated calls with the same input render identically.
func CalcServiceCosts(services []ServiceInput, participantCount int, days DayCount) ([]CostLine, float64) {
	var breakdown []CostLine
	var total float64

	for _, svc := range services {
		if !svc.Enabled {
			continue
		}
		prorated := ProrateCost(svc.CostPrice, svc.TimeBasis, days)
		cost := prorated * float64(svc.EffectiveParticipants(participantCount))
		breakdown = append(breakdown, CostLine{Name: svc.Name, Cost: cost})
		total += cost
	}

	return breakdown, total
}
