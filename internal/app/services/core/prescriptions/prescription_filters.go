package prescriptions

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/utils"
	"strings"
	"time"
)

// FilterPrescriptions narrows the fetched list in place of backend-side
// filtering. Date ranges count back from today, search matches patient,
// doctor, diagnosis and the prescription id case-insensitively.
func FilterPrescriptions(items []responses.Prescription, filters requests.PrescriptionFilters, today time.Time) []responses.Prescription {
	status := strings.ToLower(strings.TrimSpace(filters.Status))
	search := strings.ToLower(strings.TrimSpace(filters.Search))
	since, bounded := rangeStart(filters.DateRange, today)

	filtered := make([]responses.Prescription, 0, len(items))
	for _, item := range items {
		if status != "" && status != constvars.FilterAll && strings.ToLower(item.Status) != status {
			continue
		}
		if bounded && item.PrescribedAt.In(today.Location()).Before(since) {
			continue
		}
		if search != "" && !matches(item, search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func rangeStart(dateRange string, today time.Time) (time.Time, bool) {
	start := utils.StartOfDay(today)
	switch dateRange {
	case constvars.DateRangeToday:
		return start, true
	case constvars.DateRangeLast7:
		return start.AddDate(0, 0, -7), true
	case constvars.DateRangeLast30:
		return start.AddDate(0, 0, -30), true
	}
	return time.Time{}, false
}

func matches(item responses.Prescription, search string) bool {
	for _, field := range []string{item.PatientName, item.DoctorName, item.Diagnosis, item.ID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
