package model

import "github.com/shopspring/decimal"

type HomeResponse struct {
	Lang         string              `json:"lang"`
	FeaturedNews []LocalizedNews     `json:"featured_news"`
	LatestNews   []LocalizedNews     `json:"latest_news"`
	Guides       []LocalizedGuide    `json:"guides"`
	Partners     []Partner           `json:"partners"`
	Categories   []LocalizedCategory `json:"categories"`
}

// Counts is a row count per table.
type Counts struct {
	News          int `json:"news" db:"news"`
	PublishedNews int `json:"published_news" db:"published_news"`
	Categories    int `json:"categories" db:"categories"`
	Leaders       int `json:"leaders" db:"leaders"`
	Debts         int `json:"debts" db:"debts"`
	Guides        int `json:"guides" db:"guides"`
	Partners      int `json:"partners" db:"partners"`
	Subscribers   int `json:"subscribers" db:"subscribers"`
}

type DashboardStats struct {
	Counts     Counts          `json:"counts"`
	Debts      []DebtSummary   `json:"debts"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	TopNews    []LocalizedNews `json:"top_news"`
	LatestNews []LocalizedNews `json:"latest_news"`
	Regions    []string        `json:"regions"`
}
