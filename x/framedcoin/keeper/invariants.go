package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// RegisterInvariants registers the framedcoin module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrowed-value", EscrowedValueInvariant(k))
	ir.RegisterRoute(types.ModuleName, "certificates", CertificatesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "escrow-balance", EscrowBalanceInvariant(k))
}

// EscrowedValueInvariant checks that the stored escrow total equals the sum of
// the value held by every live certificate.
func EscrowedValueInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		k.mu.RLock()
		defer k.mu.RUnlock()

		stored, err := k.getEscrowed(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrowed-value", err.Error()), true
		}
		sum := math.ZeroInt()
		err = k.walkCertificates(ctx, func(_ uint64, cert types.Certificate) (bool, error) {
			sum = sum.Add(cert.Value)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrowed-value", err.Error()), true
		}

		broken := !stored.Equal(sum)
		return sdk.FormatInvariant(types.ModuleName, "escrowed-value",
			fmt.Sprintf("stored total %s, sum of certificates %s", stored, sum)), broken
	}
}

// CertificatesInvariant checks every record's invariants and that no id is
// above the counter.
func CertificatesInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		k.mu.RLock()
		defer k.mu.RUnlock()

		counter, err := k.counter.Peek(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "certificates", err.Error()), true
		}
		var msg string
		err = k.walkCertificates(ctx, func(id uint64, cert types.Certificate) (bool, error) {
			if id == 0 || id > counter {
				msg = fmt.Sprintf("certificate %d outside [1, %d]", id, counter)
				return true, nil
			}
			if err := cert.Validate(); err != nil {
				msg = fmt.Sprintf("certificate %d: %s", id, err)
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "certificates", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "certificates", msg), msg != ""
	}
}

// EscrowBalanceInvariant checks that the module account holds exactly the
// escrowed value plus the unwithdrawn fees.
func EscrowBalanceInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		k.mu.RLock()
		defer k.mu.RUnlock()

		escrowed, err := k.getEscrowed(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrow-balance", err.Error()), true
		}
		fees, err := k.getUnwithdrawnFees(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrow-balance", err.Error()), true
		}

		balance := k.bankKeeper.GetBalance(ctx, types.EscrowAddress, k.denom)
		expected := escrowed.Add(fees)
		broken := !balance.Amount.Equal(expected)
		return sdk.FormatInvariant(types.ModuleName, "escrow-balance",
			fmt.Sprintf("module balance %s, escrowed %s + fees %s", balance.Amount, escrowed, fees)), broken
	}
}
