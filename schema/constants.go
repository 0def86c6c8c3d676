package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// BranchState represents the staleness classification of a branch.
	BranchState string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	TableOut   OutputMode = "table"
	ParquetOut OutputMode = "parquet"
)

// All branch states supported.
const (
	ActiveState BranchState = "active"
	StaleState  BranchState = "stale"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	TableOut:   {},
	ParquetOut: {},
}
