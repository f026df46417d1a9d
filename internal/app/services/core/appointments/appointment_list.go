package appointments

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/utils"
	"net/url"
	"strings"
	"time"
)

// BuildFilterQuery maps the filter bar to backend query parameters. Date
// buckets look forward from today; "all" values add nothing.
func BuildFilterQuery(filters requests.AppointmentFilters, today time.Time) url.Values {
	query := url.Values{}
	today = utils.StartOfDay(today)

	var end time.Time
	switch strings.ToLower(filters.DateRange) {
	case constvars.DateRangeToday:
		end = today
	case constvars.DateRangeWeek:
		end = today.AddDate(0, 0, 7)
	case constvars.DateRangeMonth:
		end = today.AddDate(0, 1, 0)
	}
	if !end.IsZero() {
		query.Set(constvars.QueryStartDate, utils.FormatDate(today))
		query.Set(constvars.QueryEndDate, utils.FormatDate(end))
	}

	if status := strings.TrimSpace(filters.Status); status != "" && !strings.EqualFold(status, constvars.FilterAll) {
		query.Set(constvars.QueryStatus, strings.ToUpper(status))
	}
	if providerID := strings.TrimSpace(filters.ProviderID); providerID != "" && !strings.EqualFold(providerID, constvars.FilterAll) {
		query.Set(constvars.QueryProviderID, providerID)
	}
	return query
}

// NormalizeFilters fills blank filter values with "all".
func NormalizeFilters(filters requests.AppointmentFilters) requests.AppointmentFilters {
	defaults := requests.DefaultAppointmentFilters()
	if strings.TrimSpace(filters.DateRange) == "" {
		filters.DateRange = defaults.DateRange
	}
	if strings.TrimSpace(filters.Status) == "" {
		filters.Status = defaults.Status
	}
	if strings.TrimSpace(filters.ProviderID) == "" {
		filters.ProviderID = defaults.ProviderID
	}
	return filters
}

// StatusBadge is the badge color of an appointment status.
func StatusBadge(status string) string {
	switch strings.ToUpper(status) {
	case constvars.AppointmentStatusScheduled:
		return constvars.BadgePrimary
	case constvars.AppointmentStatusConfirmed:
		return constvars.BadgeInfo
	case constvars.AppointmentStatusCheckedIn, constvars.AppointmentStatusInProgress:
		return constvars.BadgeWarning
	case constvars.AppointmentStatusCompleted:
		return constvars.BadgeSuccess
	case constvars.AppointmentStatusCancelled:
		return constvars.BadgeDanger
	case constvars.AppointmentStatusNoShow:
		return constvars.BadgeSecondary
	}
	return constvars.BadgePrimary
}

// StatusActions lists the actions offered for an appointment in status.
func StatusActions(status string) []string {
	switch strings.ToUpper(status) {
	case constvars.AppointmentStatusScheduled:
		return []string{constvars.ActionConfirm, constvars.ActionCancel}
	case constvars.AppointmentStatusConfirmed:
		return []string{constvars.ActionCheckIn, constvars.ActionCancel}
	case constvars.AppointmentStatusCheckedIn, constvars.AppointmentStatusInProgress:
		return []string{constvars.ActionComplete}
	}
	return nil
}
