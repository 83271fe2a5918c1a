package export

import (
	"encoding/json"
	"io"

	"mxshs/vbcrawler/src/domain"
)

// WriteJSON writes records as an indented JSON array. A run with no
// records still produces "[]".
func WriteJSON(w io.Writer, records []domain.BetRecord) error {
	if records == nil {
		records = []domain.BetRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(records)
}

// ReadJSON decodes an array written by WriteJSON.
func ReadJSON(r io.Reader) ([]domain.BetRecord, error) {
	var records []domain.BetRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}

	return records, nil
}
