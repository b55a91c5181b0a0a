package dto

import (
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
)

// ReportRangeParams defines the optional date window shared by report
// endpoints. Both bounds are inclusive calendar days; an absent bound leaves
// that side open.
type ReportRangeParams struct {
	StartDate *string `form:"startDate"` // YYYY-MM-DD
	EndDate   *string `form:"endDate"`   // YYYY-MM-DD
}

// ToDateRange converts the query parameters to a repository date range.
func (p ReportRangeParams) ToDateRange() (portsrepo.DateRange, error) {
	var rng portsrepo.DateRange
	if p.StartDate != nil {
		start, err := parseDate(*p.StartDate, "startDate")
		if err != nil {
			return portsrepo.DateRange{}, err
		}
		rng.Start = &start
	}
	if p.EndDate != nil {
		end, err := parseDate(*p.EndDate, "endDate")
		if err != nil {
			return portsrepo.DateRange{}, err
		}
		rng.End = &end
	}
	return rng, nil
}

// SpendingByCategoryParams defines query parameters for the category
// breakdown report.
type SpendingByCategoryParams struct {
	ReportRangeParams
	Kind string `form:"kind,default=expense" binding:"omitempty,oneof=income expense"`
}

// TrendParams defines query parameters for the income-vs-expense trend.
type TrendParams struct {
	ReportRangeParams
	Bucket string `form:"bucket,default=month" binding:"omitempty,oneof=day week month year"`
}
