package pipeline

import "github.com/opencivic/tallyengine/ids"

// UnitDef is one unit's static configuration from the division registry:
// its option set (with order_index), eligible electorate, and optional
// region/family tag used by the double-majority gate's family panel.
type UnitDef struct {
	UnitId             ids.UnitId
	Options            []ids.OptionItem
	EligibleElectorate uint64
	RegionTag          string
	// PopulationWeight feeds aggregation's WeightPopulationWeighted
	// mode; left zero when unused.
	PopulationWeight uint64
}

// DivisionRegistry is the full static input: every tabulation unit and
// its option set (spec section 6).
type DivisionRegistry struct {
	Units []UnitDef
}

// UnitByID returns the UnitDef for id, or false if absent.
func (r DivisionRegistry) UnitByID(id ids.UnitId) (UnitDef, bool) {
	for _, u := range r.Units {
		if u.UnitId == id {
			return u, true
		}
	}
	return UnitDef{}, false
}
