package refcache

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/exceptions"
	"context"
)

// LoadLists gathers the select inputs of a clinical form. Any failure other
// than an expired token leaves the lists empty with Failed set, so the page
// still renders.
func LoadLists(ctx context.Context, cache contracts.ReferenceCache, accessToken string, withMedicines bool) (*models.ReferenceLists, error) {
	lists := new(models.ReferenceLists)

	doctors, err := cache.Doctors(ctx, accessToken)
	if err == nil {
		lists.Doctors = doctors
		lists.Patients, err = cache.Patients(ctx, accessToken)
	}
	if err == nil && withMedicines {
		lists.Medicines, err = cache.Medicines(ctx, accessToken)
	}
	if err != nil {
		if exceptions.IsUnauthorized(err) {
			return nil, err
		}
		return &models.ReferenceLists{Failed: true}, nil
	}
	return lists, nil
}
