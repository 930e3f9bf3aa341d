// Package tip holds the advisory line shared by the weather and market engines.
package tip

import (
	"encoding/json"
	"strings"
)

// Tip is one advisory line: a glyph plus message text. On the wire it also
// carries the rendered "icon text" line for clients that split it themselves.
type Tip struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type wireTip struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
	Line string `json:"line"`
}

// MarshalJSON emits icon, text and the legacy line.
func (t Tip) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTip{Icon: t.Icon, Text: t.Text, Line: t.String()})
}

// UnmarshalJSON accepts the structured form or a bare legacy line.
func (t *Tip) UnmarshalJSON(data []byte) error {
	var line string
	if err := json.Unmarshal(data, &line); err == nil {
		*t = Parse(line)
		return nil
	}
	var w wireTip
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Icon == "" && w.Text == "" && w.Line != "" {
		*t = Parse(w.Line)
		return nil
	}
	*t = Tip{Icon: w.Icon, Text: w.Text}
	return nil
}

// New builds a Tip.
func New(icon, text string) Tip {
	return Tip{Icon: icon, Text: text}
}

// String renders the legacy "icon text" line.
func (t Tip) String() string {
	if t.Icon == "" {
		return t.Text
	}
	return t.Icon + " " + t.Text
}

// Parse splits a legacy line on its first space. A line without a space is
// treated as a bare icon.
func Parse(line string) Tip {
	icon, text, found := strings.Cut(line, " ")
	if !found {
		return Tip{Icon: line}
	}
	return Tip{Icon: icon, Text: text}
}

// Lines renders every tip in order.
func Lines(tips []Tip) []string {
	out := make([]string, 0, len(tips))
	for _, t := range tips {
		out = append(out, t.String())
	}
	return out
}
