package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "certregistry"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	HoldersKeyPrefix     = collections.NewPrefix(0)
	HolderIndexKeyPrefix = collections.NewPrefix(1)
	SupplyKeyPrefix      = collections.NewPrefix(2)
)
