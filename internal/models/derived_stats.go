package models

// BeverageTotals accumulates per-beverage quantities plus the normalized
// beer-equivalent total and the number of distinct days covered.
type BeverageTotals struct {
	Baijiu    float64 `json:"baijiu"`
	Beer      float64 `json:"beer"`
	Red       float64 `json:"red"`
	Qingdao   float64 `json:"qingdao"`
	TotalBeer float64 `json:"totalBeer"`
	Days      int     `json:"days"`
}

// Add accumulates one member-day entry into the totals. Days is tracked by
// the aggregator, not here, since the same member can appear once per day
// at most.
func (t *BeverageTotals) Add(e MemberEntry) {
	t.Baijiu += e.Baijiu
	t.Beer += e.Beer
	t.Red += e.Red
	t.Qingdao += e.Qingdao
	t.TotalBeer += e.Baijiu*BaijiuToBeer + e.Beer*BeerToBeer + e.Red*RedToBeer + e.Qingdao*QingdaoToBeer
}

// Beer-equivalent conversion factors, normalized to one beer serving.
const (
	BaijiuToBeer  = 3
	BeerToBeer    = 1
	RedToBeer     = 4.125
	QingdaoToBeer = 0.775
)

// DerivedStats is the point-in-time summary computed from a Document.
// It is never persisted.
type DerivedStats struct {
	TotalDays   int                        `json:"totalDays"`
	LastUpdated string                     `json:"lastUpdated,omitempty"`
	MemberStats map[string]*BeverageTotals `json:"memberStats"`
	WineStats   BeverageTotals             `json:"wineStats"`
}
