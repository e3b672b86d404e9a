package keeper

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	registrytypes "github.com/framedcoin/framedcoin/x/certregistry/types"
	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

func parseCaller(addr string) (sdk.AccAddress, error) {
	caller, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid caller address: %s", err)
	}
	return caller, nil
}

// requireOwner fails with ErrUnauthorized unless caller is the module owner.
func (k *Keeper) requireOwner(caller sdk.AccAddress) error {
	if !caller.Equals(k.owner) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner", caller)
	}
	return nil
}

// requireCertificateOwner fails with ErrUnauthorizedCertificateAccess unless
// the registry reports caller as the current holder of id. Identities unknown
// to the registry fail with ErrNotFound.
func (k *Keeper) requireCertificateOwner(ctx context.Context, caller sdk.AccAddress, id uint64) error {
	holder, err := k.registry.OwnerOf(ctx, id)
	switch {
	case errors.Is(err, registrytypes.ErrCertificateNotFound):
		return errorsmod.Wrapf(types.ErrNotFound, "id %d", id)
	case err != nil:
		return err
	}
	if !holder.Equals(caller) {
		return errorsmod.Wrapf(types.ErrUnauthorizedCertificateAccess, "id %d is not held by %s", id, caller)
	}
	return nil
}
