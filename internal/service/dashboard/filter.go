package dashboard

import (
	"fmt"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
)

const (
	payloadAxisLabel = "Payload Mass (kg)"
	outcomeAxisLabel = "Launch Outcome"
)

// PayloadScatter keeps the launches whose payload mass lies in rng (bounds
// included), restricted to site unless it is types.AllSites. Points keep the
// input order.
func PayloadScatter(records []models.LaunchRecord, site string, rng models.PayloadRange) models.ScatterChart {
	points := make([]models.ScatterPoint, 0)
	for _, r := range records {
		if !rng.Contains(r.PayloadMass) {
			continue
		}
		if site != types.AllSites && r.Site != site {
			continue
		}
		points = append(points, models.ScatterPoint{
			PayloadMass:     r.PayloadMass,
			Class:           r.Class,
			BoosterCategory: r.BoosterCategory,
			Site:            r.Site,
			FlightNumber:    r.FlightNumber,
		})
	}

	return models.ScatterChart{
		Title:  scatterTitle(site),
		Site:   site,
		Range:  rng,
		XLabel: payloadAxisLabel,
		YLabel: outcomeAxisLabel,
		Points: points,
	}
}

func scatterTitle(site string) string {
	if site == types.AllSites {
		return "Correlation between Payload and Success for all Sites"
	}
	return fmt.Sprintf("Correlation between Payload and Success for %s", site)
}
