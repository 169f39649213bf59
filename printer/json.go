package printer

import (
	"encoding/json"
	"fmt"
)

// jsonList represents a list in JSON format.
type jsonList struct {
	Size      int      `json:"size"`
	Values    []uint32 `json:"values"`
	Truncated bool     `json:"truncated,omitempty"`
}

// printJSON prints the list as a single JSON object.
func (p *Printer) printJSON(vals []uint32) error {
	shown, truncated := p.shown(vals)
	if shown == nil {
		shown = []uint32{}
	}
	data, err := json.Marshal(jsonList{
		Size:      len(vals),
		Values:    shown,
		Truncated: truncated,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
