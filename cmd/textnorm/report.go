package main

import (
	"encoding/json"
	"io"

	"github.com/npillmayer/textnorm"
)

// JSON output of the commands. Ranges are byte offsets, end exclusive.

type rangeJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func jsonRange(r textnorm.Range) rangeJSON {
	return rangeJSON{Start: r.Start, End: r.End}
}

type changeJSON struct {
	Range  rangeJSON `json:"range"`
	Length int       `json:"length"`
}

type normalizeReport struct {
	Normalized string       `json:"normalized"`
	Changes    []changeJSON `json:"changes,omitempty"`
}

type spanJSON struct {
	Range rangeJSON `json:"range"`
	Text  string    `json:"text"`
}

type translateReport struct {
	Normalized spanJSON `json:"normalized"`
	Original   spanJSON `json:"original"`
}

type sentenceJSON struct {
	Normalized spanJSON `json:"normalized"`
	Original   spanJSON `json:"original"`
}

type labelJSON struct {
	Comment    int       `json:"comment"`
	Range      rangeJSON `json:"range"`
	Normalized string    `json:"normalized"`
	Text       string    `json:"text"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
