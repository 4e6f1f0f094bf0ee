package dashboard

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
)

const allSitesPieTitle = "Total Successful Launches by Site"

// SuccessPie builds the pie figure for the selected site.
//
// For types.AllSites the class values are summed per launch site, giving the
// number of successful launches of every site. For a concrete site the
// launches of that site are counted per outcome and labelled Success (1) or
// Failure (0); other class values are dropped. An unknown site yields a pie
// with no slices.
func SuccessPie(records []models.LaunchRecord, site string) models.PieChart {
	if site == types.AllSites {
		return successBySite(records)
	}
	return outcomeForSite(records, site)
}

func successBySite(records []models.LaunchRecord) models.PieChart {
	sums := make(map[string]int)
	for _, r := range records {
		sums[r.Site] += r.Class
	}

	out := make([]models.PieSlice, 0, len(sums))
	for _, site := range slices.Sorted(maps.Keys(sums)) {
		out = append(out, models.PieSlice{Label: site, Count: sums[site]})
	}

	return models.PieChart{
		Title:  allSitesPieTitle,
		Site:   types.AllSites,
		Slices: out,
	}
}

func outcomeForSite(records []models.LaunchRecord, site string) models.PieChart {
	var success, failure int
	for _, r := range records {
		if r.Site != site {
			continue
		}
		switch r.Class {
		case 1:
			success++
		case 0:
			failure++
		}
	}

	out := make([]models.PieSlice, 0, 2)
	if success > 0 {
		out = append(out, models.PieSlice{Label: types.OutcomeSuccess, Count: success})
	}
	if failure > 0 {
		out = append(out, models.PieSlice{Label: types.OutcomeFailure, Count: failure})
	}
	// most frequent outcome first, Success wins ties
	slices.SortStableFunc(out, func(a, b models.PieSlice) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return models.PieChart{
		Title:  fmt.Sprintf("Total Success vs. Failure for %s", site),
		Site:   site,
		Slices: out,
	}
}
