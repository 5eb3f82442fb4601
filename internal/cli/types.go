package cli

// outputFormat is an enum representing the argument of the --format
// option.
type outputFormat int

// Values for outputFormat.
const (
	// --format=table
	outputFormatTable outputFormat = iota

	// --format=json
	outputFormatJSON
)

// infoLine represents one line in the table emitted by 'xref info'.
type infoLine struct {
	Field string `json:"field" pretty:"Field"`
	Value string `json:"value" pretty:"Value"`
}

// namedGrid is the JSON form of one table printed by 'xref demo' and
// 'xref show'.
type namedGrid struct {
	Name string  `json:"name,omitempty"`
	Grid [][]any `json:"grid"`
}
