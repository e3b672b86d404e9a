package types

import (
	"cosmossdk.io/collections"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name. It is also the name of the module
	// account escrowing certificate value and unwithdrawn fees.
	ModuleName = "framedcoin"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

var (
	CertificatesKeyPrefix    = collections.NewPrefix(0)
	CounterKeyPrefix         = collections.NewPrefix(1)
	ParamsKeyPrefix          = collections.NewPrefix(2)
	UnwithdrawnFeesKeyPrefix = collections.NewPrefix(3)
	TotalEscrowedKeyPrefix   = collections.NewPrefix(4)
	PausedKeyPrefix          = collections.NewPrefix(5)
)

// EscrowAddress is the module account holding certificate value and fees.
var EscrowAddress = authtypes.NewModuleAddress(ModuleName)
