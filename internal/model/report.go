package model

import "time"

type ContractFilter struct {
	State          ContractState
	CandidateNetID string
	StartFrom      time.Time
	StartTo        time.Time
}

type StateGroup struct {
	State     ContractState
	Count     int64
	Contracts []Contract
}

// ContractReport is the data behind the HR export workbook.
type ContractReport struct {
	GeneratedAt time.Time
	Filter      ContractFilter
	Total       int64
	Groups      []StateGroup
}

// ContractDocument is the data behind the printable contract.
type ContractDocument struct {
	Contract     Contract
	GeneratedAt  time.Time
	DurationDays int
	OpenEnded    bool
}
