package dataset

// ColumnKind is how a CSV cell is converted before it is bound.
type ColumnKind int

// Column kinds.
const (
	Text ColumnKind = iota
	Integer
	Real
)

// Column is one known column of a dataset table.
type Column struct {
	Name string
	Kind ColumnKind
}

// Table describes a dataset table and the columns a CSV may populate.
type Table struct {
	Name    string
	Columns []Column
}

// Column looks up a column by name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Tables lists the dataset tables in load order.
var Tables = []Table{
	{
		Name: "literacy_rates",
		Columns: []Column{
			{"country", Text},
			{"owid_region", Text},
			{"year", Integer},
			{"adult_literacy_rate__population_both_sexes", Real},
			{"adult_literacy_rate__population_female", Real},
			{"adult_literacy_rate__population_male", Real},
			{"youth_literacy_rate__population_15_24_years__both_sexes", Real},
			{"youth_literacy_rate__population_15_24_years__female", Real},
			{"youth_literacy_rate__population_15_24_years__male", Real},
		},
	},
	{
		Name: "illiteracy_population",
		Columns: []Column{
			{"country", Text},
			{"year", Integer},
			{"illiteracy_percent", Real},
			{"illiteracy_rate", Real},
		},
	},
	{
		Name: "gdp_schooling",
		Columns: []Column{
			{"country", Text},
			{"year", Integer},
			{"avg_years_schooling", Real},
			{"gdp_per_capita", Real},
			{"gdp_per_schooling_year", Real},
		},
	},
}

// TableNamed returns the dataset table with the given name.
func TableNamed(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
