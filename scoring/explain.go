package scoring

import (
	"fmt"
	"strings"
)

// explanation renders the qualifying band observations for a score record in
// emission order: severity, frequency, urgency, time decay, final verdict.
// Each band check is independent; every qualifying observation is included.
func explanation(r Record) string {
	var obs []string
	category := strings.ToUpper(r.Category)

	switch {
	case r.Severity > 0.8:
		obs = append(obs, fmt.Sprintf("CRITICAL SEVERITY (%g): %s issue is extremely dangerous", r.Severity, category))
	case r.Severity > 0.6:
		obs = append(obs, fmt.Sprintf("HIGH SEVERITY (%g): %s issue is significant", r.Severity, category))
	case r.Severity > 0.4:
		obs = append(obs, fmt.Sprintf("MEDIUM SEVERITY (%g): %s issue needs attention", r.Severity, category))
	}

	switch {
	case r.Frequency > 0.7:
		obs = append(obs, fmt.Sprintf("WIDESPREAD (%g): 6+ similar complaints found", r.Frequency))
	case r.Frequency > 0.5:
		obs = append(obs, fmt.Sprintf("REPEATED ISSUE (%g): multiple similar complaints", r.Frequency))
	case r.Frequency > 0.2:
		obs = append(obs, fmt.Sprintf("SOME HISTORY (%g): similar complaints exist", r.Frequency))
	}

	switch {
	case r.Urgency > 0.8:
		obs = append(obs, fmt.Sprintf("HIGHLY URGENT (%g): immediate action required", r.Urgency))
	case r.Urgency > 0.5:
		obs = append(obs, fmt.Sprintf("URGENT (%g): quick response needed", r.Urgency))
	}

	switch {
	case r.TimeFactor > 0.7:
		obs = append(obs, fmt.Sprintf("CRITICAL DELAY (%g): pending for 7+ days", r.TimeFactor))
	case r.TimeFactor > 0.4:
		obs = append(obs, fmt.Sprintf("DELAYED (%g): pending for several days", r.TimeFactor))
	}

	switch TriageBand(r.PriorityScore) {
	case BandHigh:
		obs = append(obs, "HIGH PRIORITY: auto-escalate to admin immediately")
	case BandMedium:
		obs = append(obs, "MEDIUM PRIORITY: schedule within 2-3 days")
	case BandLow:
		obs = append(obs, "LOW PRIORITY: schedule within 1 week")
	default:
		obs = append(obs, "VERY LOW PRIORITY: general maintenance")
	}

	return strings.Join(obs, " | ")
}
