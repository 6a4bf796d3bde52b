package finnhubModel

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Quote is the body of GET /quote.
type Quote struct {
	// nil when the provider omitted the field or sent a non-number
	Current       *float64 `json:"c"`
	High          float64  `json:"h"`
	Low           float64  `json:"l"`
	Open          float64  `json:"o"`
	PreviousClose float64  `json:"pc"`
	Timestamp     int64    `json:"t"`

	// the provider's value of "c" when it was not a number, echoed back on marshal
	rawCurrent json.RawMessage
}

type quoteFields Quote

type quoteJSON struct {
	quoteFields
	Current json.RawMessage `json:"c,omitempty"`
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	var v quoteJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*q = Quote(v.quoteFields)
	q.Current = nil
	q.rawCurrent = nil

	if len(v.Current) == 0 || string(v.Current) == "null" {
		return nil
	}

	var current float64
	if err := json.Unmarshal(v.Current, &current); err != nil {
		q.rawCurrent = v.Current
		return nil
	}
	q.Current = &current

	return nil
}

func (q Quote) MarshalJSON() ([]byte, error) {
	v := quoteJSON{quoteFields: quoteFields(q)}

	switch {
	case q.Current != nil:
		current, err := json.Marshal(*q.Current)
		if err != nil {
			return nil, err
		}
		v.Current = current
	case len(q.rawCurrent) > 0:
		v.Current = q.rawCurrent
	}

	return json.Marshal(v)
}

func (q Quote) HasCurrent() bool {
	return q.Current != nil
}

// CurrentPrice returns the current price, zero when it is missing.
func (q Quote) CurrentPrice() decimal.Decimal {
	if q.Current == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*q.Current)
}
