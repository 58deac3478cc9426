package entity

// AmpLookupStatus tags the outcome of a DNMA catalog lookup for a single
// product ID, so callers can tell "no data" apart from "lookup errored".
// Either way the surrounding request proceeds with empty enrichment fields.
type AmpLookupStatus int

const (
	AmpFound AmpLookupStatus = iota
	AmpNotFound
	AmpLookupFailed
)

// AmpDetails is descriptive drug-catalog metadata fetched from the DNMA
// database by product ID. Never persisted locally; recomputed on every read.
type AmpDetails struct {
	Description    string
	ProdMSP        string
	LaboratoryName string
	LaboratoryRUT  string
}

// AmpLookup is the per-product result of a batched DNMA fetch.
type AmpLookup struct {
	Status  AmpLookupStatus
	Details AmpDetails
}
