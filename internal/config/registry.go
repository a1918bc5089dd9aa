package config

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/pipeline"
)

// OptionFile mirrors ids.OptionItem on the wire.
type OptionFile struct {
	OptionId    string `yaml:"option_id"`
	Name        string `yaml:"name"`
	OrderIndex  uint16 `yaml:"order_index"`
	IsStatusQuo bool   `yaml:"is_status_quo"`
}

func (o OptionFile) item() ids.OptionItem {
	return ids.OptionItem{
		OptionId:    ids.OptionId(o.OptionId),
		Name:        o.Name,
		OrderIndex:  o.OrderIndex,
		IsStatusQuo: o.IsStatusQuo,
	}
}

// UnitDefFile mirrors pipeline.UnitDef on the wire.
type UnitDefFile struct {
	UnitId             string       `yaml:"unit_id"`
	Options            []OptionFile `yaml:"options"`
	EligibleElectorate uint64       `yaml:"eligible_electorate"`
	RegionTag          string       `yaml:"region_tag"`
	PopulationWeight   uint64       `yaml:"population_weight"`
}

func (u UnitDefFile) def() pipeline.UnitDef {
	options := make([]ids.OptionItem, len(u.Options))
	for i, o := range u.Options {
		options[i] = o.item()
	}
	return pipeline.UnitDef{
		UnitId:             ids.UnitId(u.UnitId),
		Options:            options,
		EligibleElectorate: u.EligibleElectorate,
		RegionTag:          u.RegionTag,
		PopulationWeight:   u.PopulationWeight,
	}
}

// RegistryFile is the on-disk YAML shape of a DivisionRegistry (spec
// section 6).
type RegistryFile struct {
	Units []UnitDefFile `yaml:"units"`
}

// Registry translates the wire form into pipeline.DivisionRegistry.
func (f RegistryFile) Registry() pipeline.DivisionRegistry {
	units := make([]pipeline.UnitDef, len(f.Units))
	for i, u := range f.Units {
		units[i] = u.def()
	}
	return pipeline.DivisionRegistry{Units: units}
}
