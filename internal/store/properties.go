package store

// PropertyInfo describes one named element property: the key used in the
// data tables, the label shown in the detail panel, its display unit, and
// whether the value is numeric-bearing (eligible for threshold coloring
// and numeric sorting).
type PropertyInfo struct {
	Name    string
	Label   string
	Unit    string
	Numeric bool
}

// Properties fixes the enumeration order of the detail panel. The order is
// part of the user-visible contract; append, don't reorder.
var Properties = []PropertyInfo{
	{Name: "atomic_mass", Label: "Atomic mass", Unit: "u", Numeric: true},
	{Name: "density", Label: "Density", Unit: "g/cm³", Numeric: true},
	{Name: "melting_point", Label: "Melting point", Unit: "K", Numeric: true},
	{Name: "boiling_point", Label: "Boiling point", Unit: "K", Numeric: true},
	{Name: "atomic_radius", Label: "Atomic radius", Unit: "pm", Numeric: true},
	{Name: "covalent_radius", Label: "Covalent radius", Unit: "pm", Numeric: true},
	{Name: "ionic_radius", Label: "Ionic radius", Unit: "pm", Numeric: true},
	{Name: "electronegativity", Label: "Electronegativity", Unit: "Pauling", Numeric: true},
	{Name: "first_ionization", Label: "First ionization", Unit: "kJ/mol", Numeric: true},
	{Name: "specific_heat", Label: "Specific heat", Unit: "J/(g·K)", Numeric: true},
	{Name: "heat_of_fusion", Label: "Heat of fusion", Unit: "kJ/mol", Numeric: true},
	{Name: "heat_of_vaporization", Label: "Heat of vaporization", Unit: "kJ/mol", Numeric: true},
	{Name: "thermal_conductivity", Label: "Thermal conductivity", Unit: "W/(m·K)", Numeric: true},
	{Name: "electrical_resistivity", Label: "Electrical resistivity", Unit: "nΩ·m", Numeric: true},
	{Name: "abundance", Label: "Crustal abundance", Unit: "mg/kg", Numeric: true},
	{Name: "oxidation_states", Label: "Oxidation states", Unit: "", Numeric: false},
	{Name: "discovered", Label: "Discovered", Unit: "", Numeric: false},
	{Name: "discoverer", Label: "Discovered by", Unit: "", Numeric: false},
}

// PropertyByName resolves a property key against the registry.
func PropertyByName(name string) (PropertyInfo, bool) {
	for _, p := range Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyInfo{}, false
}

// NumericProperties lists the property keys eligible for threshold coloring,
// in registry order.
func NumericProperties() []string {
	var names []string
	for _, p := range Properties {
		if p.Numeric {
			names = append(names, p.Name)
		}
	}
	return names
}
