package output

import (
	"encoding/json"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
)

// ToJSON serializes both partitions as {"resultaat": [...], "exclusie": [...]}.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
