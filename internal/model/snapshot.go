package model

// SnapshotVersion tags exported documents; restore accepts any version with
// the same data shape.
const SnapshotVersion = "1.0"

// SnapshotData holds every row of every core table at one instant. All five
// collections must be present (possibly empty, never null) for a document to
// be restorable.
type SnapshotData struct {
	Products  []Product  `json:"products"`
	Sales     []Sale     `json:"sales"`
	SaleItems []SaleItem `json:"saleItems"`
	Users     []User     `json:"users"`
	Settings  []Setting  `json:"settings"`
}

// SnapshotDocument is the single self-contained backup value.
type SnapshotDocument struct {
	Version    string       `json:"version"`
	ExportedAt int64        `json:"exportedAt"` // epoch millis
	Data       SnapshotData `json:"data"`
}
