package domain

// Table is the name of a mongo collection
type Table string

const (
	TableMintRecords Table = "mint_records"
)
