package models

// PieSlice is one labelled count of the success pie.
type PieSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PieChart is the figure behind the success pie.
type PieChart struct {
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice counts.
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Count
	}
	return total
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies inside the range, bounds included.
func (r PayloadRange) Contains(mass float64) bool {
	return r.Low <= mass && mass <= r.High
}

// ScatterPoint is one launch plotted as payload mass vs outcome.
type ScatterPoint struct {
	PayloadMass     float64 `json:"x"`
	Class           int     `json:"y"`
	BoosterCategory string  `json:"category"`
	Site            string  `json:"site"`
	FlightNumber    int     `json:"flight_number,omitempty"`
}

// ScatterChart is the figure behind the payload/outcome scatter.
type ScatterChart struct {
	Title  string         `json:"title"`
	Site   string         `json:"site"`
	Range  PayloadRange   `json:"range"`
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
	Points []ScatterPoint `json:"points"`
}

// Categories returns the distinct booster categories in first-seen order.
func (s ScatterChart) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.Points {
		if _, ok := seen[p.BoosterCategory]; ok {
			continue
		}
		seen[p.BoosterCategory] = struct{}{}
		out = append(out, p.BoosterCategory)
	}
	return out
}
