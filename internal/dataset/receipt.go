package dataset

import "time"

// ReceiptItem is one line of a warehouse receipt
type ReceiptItem struct {
	Index    string  `yaml:"index"`
	Name     string  `yaml:"name"`
	Quantity int     `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
	Value    float64 `yaml:"value"`
}

// Receipt is a goods-received document
type Receipt struct {
	CompanyName []string      `yaml:"company_name"`
	NIP         string        `yaml:"nip"`
	Number      string        `yaml:"number"`
	Reference   string        `yaml:"reference"`
	Date        time.Time     `yaml:"date"`
	Recipient   string        `yaml:"recipient"`
	ReceivedBy  string        `yaml:"received_by"`
	Items       []ReceiptItem `yaml:"items"`
}

// DefaultReceipt returns the sample document header used when the input
// carries no receipt of its own
func DefaultReceipt() Receipt {
	return Receipt{
		CompanyName: []string{"Projektowanie i Wdrażanie", "Systemów Informatycznych"},
		NIP:         "631-132-20-90",
		Number:      "Pz 1/2006",
		Reference:   "123/06",
		Date:        time.Date(2006, time.February, 28, 0, 0, 0, 0, time.UTC),
		Recipient:   "HURTOWNIA WIERTELKO",
		ReceivedBy:  "Jacek Krywult",
	}
}

// WithDefaults fills the empty header fields of r from DefaultReceipt.
// Items are never defaulted.
func (r Receipt) WithDefaults() Receipt {
	d := DefaultReceipt()
	if len(r.CompanyName) == 0 {
		r.CompanyName = d.CompanyName
	}
	if r.NIP == "" {
		r.NIP = d.NIP
	}
	if r.Number == "" {
		r.Number = d.Number
	}
	if r.Reference == "" {
		r.Reference = d.Reference
	}
	if r.Date.IsZero() {
		r.Date = d.Date
	}
	if r.Recipient == "" {
		r.Recipient = d.Recipient
	}
	if r.ReceivedBy == "" {
		r.ReceivedBy = d.ReceivedBy
	}
	return r
}

// Total returns the sum of all item values
func (r Receipt) Total() float64 {
	var t float64
	for _, it := range r.Items {
		t += it.Value
	}
	return t
}
