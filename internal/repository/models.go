package repository

import "time"

type Transaction struct {
	TransactionHash   string    `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Kind              string    `gorm:"size:16;not null;index"`       // approve, listEnergy or buyEnergy
	TransactionStatus uint64    `gorm:"not null"`                     // 1 (success) or 0 (failure)
	BlockHash         string    `gorm:"size:66;not null"`             // 0x + 64 hex chars
	BlockNumber       uint64    `gorm:"not null;index"`               // Block number
	From              string    `gorm:"size:42;not null"`             // Ethereum address (0x + 40 hex)
	To                *string   `gorm:"size:42"`                      // Nullable Ethereum address
	LogsCount         int       `gorm:"not null;default:0"`
	Input             string    `gorm:"type:text;not null"` // Hex encoded input data
	Value             string    `gorm:"size:100;not null"`  // Value in wei (string to handle large numbers)
	CreatedAt         time.Time `gorm:"not null"`
}

// Pairing is the persisted wallet pairing. The table holds at most one row.
type Pairing struct {
	Topic     string    `gorm:"primaryKey;size:36"`
	Account   string    `gorm:"size:42;not null"`
	CreatedAt time.Time `gorm:"not null"`
}
