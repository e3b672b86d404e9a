package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Holder binds a certificate identity to the account holding it.
type Holder struct {
	ID      uint64 `json:"id"`
	Address string `json:"address"`
}

// GenesisState is the registry state at chain start or export.
type GenesisState struct {
	Holders []Holder `json:"holders"`
}

// DefaultGenesis returns an empty registry.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate checks that every identity is non-zero, unique and held by a
// valid address.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]struct{}, len(gs.Holders))
	for _, h := range gs.Holders {
		if h.ID == 0 {
			return fmt.Errorf("identity 0 is reserved")
		}
		if _, exists := seen[h.ID]; exists {
			return fmt.Errorf("duplicate identity %d", h.ID)
		}
		seen[h.ID] = struct{}{}
		if _, err := sdk.AccAddressFromBech32(h.Address); err != nil {
			return fmt.Errorf("identity %d: invalid holder address: %w", h.ID, err)
		}
	}
	return nil
}
