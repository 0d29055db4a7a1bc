package compare

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(compSet, "", "  ")
	} else {
		data, err = json.Marshal(compSet)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Formatter renders a comparison set in some output format
type Formatter interface {
	Format(compSet *ComparisonSet) (string, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown name
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "console", "":
		return &TableFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	default:
		return nil
	}
}
