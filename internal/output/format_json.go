package output

import (
	"encoding/json"

	"github.com/benplan/benplan/internal/domain"
)

// JSONFormatter formats a bundle response as JSON using the wire field names
// downstream consumers expect (bundles.futureBuilder, bestFitBundle, ...).
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a bundle response.
func (jf *JSONFormatter) Format(resp *domain.BundleResponse) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(resp, "", "  ")
	} else {
		data, err = json.Marshal(resp)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
