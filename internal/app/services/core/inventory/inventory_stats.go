package inventory

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/utils"
	"net/url"
	"strings"
	"time"
)

// InventoryStats counts the stock alerts shown above the inventory table.
// An item expires soon when its expiry date falls within the next
// InventoryExpiringDays days, today included. Already expired items do
// not count.
func InventoryStats(items []responses.InventoryItem, today time.Time) responses.InventoryStats {
	start := utils.StartOfDay(today)
	limit := start.AddDate(0, 0, constvars.InventoryExpiringDays)

	stats := responses.InventoryStats{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case constvars.InventoryStatusLowStock:
			stats.LowStock++
		case constvars.InventoryStatusOutOfStock:
			stats.OutOfStock++
		}
		if item.ExpiresOn == nil {
			continue
		}
		expires := utils.StartOfDay(item.ExpiresOn.In(today.Location()))
		if !expires.Before(start) && !expires.After(limit) {
			stats.ExpiringSoon++
		}
	}
	return stats
}

// FilterByStatus keeps items whose stock status matches, ignoring case.
func FilterByStatus(items []responses.InventoryItem, status string) []responses.InventoryItem {
	status = strings.TrimSpace(status)
	if status == "" || status == constvars.FilterAll {
		return items
	}
	filtered := make([]responses.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Status, status) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func BuildInventoryQuery(filters requests.InventoryFilters) url.Values {
	query := url.Values{}
	set := func(key, value string) {
		value = strings.TrimSpace(value)
		if value != "" && value != constvars.FilterAll {
			query.Set(key, value)
		}
	}
	set(constvars.QueryItemType, filters.ItemType)
	set(constvars.QueryLocationType, filters.LocationType)
	set(constvars.QuerySearch, filters.Search)
	return query
}
