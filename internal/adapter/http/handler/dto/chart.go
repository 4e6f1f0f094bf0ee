package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/pkg/validator"
)

const maxSiteLen = 100

// ChartQuery holds the raw chart query parameters. Missing values fall back
// to the controls of a freshly opened page.
type ChartQuery struct {
	Site string
	Low  string
	High string
}

func NewChartQuery(q url.Values) ChartQuery {
	return ChartQuery{
		Site: strings.TrimSpace(q.Get("site")),
		Low:  strings.TrimSpace(q.Get("low")),
		High: strings.TrimSpace(q.Get("high")),
	}
}

// ValidateSite checks only the site. The pie ignores the payload range, so
// its endpoints do not reject bad bounds.
func (q ChartQuery) ValidateSite(v *validator.Validator) {
	v.Check(len(q.Site) <= maxSiteLen, "site", "must be at most 100 characters")
}

func (q ChartQuery) Validate(v *validator.Validator, defaults models.Controls) {
	q.ValidateSite(v)

	// Low / High
	low, lowOK := parseBound(q.Low, defaults.Range.Low)
	high, highOK := parseBound(q.High, defaults.Range.High)
	v.Check(lowOK, "low", "must be a finite number")
	v.Check(highOK, "high", "must be a finite number")
	if lowOK && highOK {
		v.Check(low <= high, "low", "must not be greater than high")
	}
}

// SiteOr returns the requested site, or def when none was given.
func (q ChartQuery) SiteOr(def string) string {
	if q.Site == "" {
		return def
	}
	return q.Site
}

// ToControls applies the query on top of defaults. Call it after Validate.
func (q ChartQuery) ToControls(defaults models.Controls) models.Controls {
	c := defaults
	c.Site = q.SiteOr(defaults.Site)
	c.Range.Low, _ = parseBound(q.Low, defaults.Range.Low)
	c.Range.High, _ = parseBound(q.High, defaults.Range.High)
	return c
}

func parseBound(raw string, def float64) (float64, bool) {
	if raw == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def, false
	}
	return f, true
}
