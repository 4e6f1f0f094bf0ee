package types

type ServiceMode string

// Dashboard Service - serves the launch records dashboard page, chart API and
// reactive websocket sessions
const (
	DashboardService ServiceMode = "dashboard-service"
)

// DatasetSource is where launch records are loaded from at startup
type DatasetSource string

const (
	SourceCSV      DatasetSource = "csv"
	SourcePostgres DatasetSource = "postgres"
)

// AllSites is the selector value meaning no site restriction
const (
	AllSites      = "ALL"
	AllSitesLabel = "All Sites"
)

// Outcome labels used by the per-site pie chart
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// ChartKind names a chart on the page
type ChartKind string

func (c ChartKind) String() string {
	return string(c)
}

const (
	PieChart     ChartKind = "pie"
	ScatterChart ChartKind = "scatter"
)

// ControlEvent is the type of a control-change message
type ControlEvent string

func (e ControlEvent) String() string {
	return string(e)
}

const (
	EventSiteChanged  ControlEvent = "site_changed"
	EventRangeChanged ControlEvent = "range_changed"
)
