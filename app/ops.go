package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// mintTo creates amount of the base currency through the faucet and credits
// it to addr. Module accounts are credited only while importing genesis,
// where the escrow balance comes from an export.
func (app *App) mintTo(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(appconsts.BaseDenom, amount))
	if err := app.BankKeeper.MintCoins(ctx, FaucetName, coins); err != nil {
		return err
	}
	for name := range maccPerms {
		if authtypes.NewModuleAddress(name).Equals(addr) {
			return app.BankKeeper.SendCoinsFromModuleToModule(ctx, FaucetName, name, coins)
		}
	}
	return app.BankKeeper.SendCoinsFromModuleToAccount(ctx, FaucetName, addr, coins)
}

// Fund mints amount of the base currency to recipient. Development networks
// use it to give accounts something to mint with. Module accounts are not
// fundable; the escrow is credited only by mint.
func (app *App) Fund(recipient string, amount math.Int) error {
	addr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return err
	}
	if app.BankKeeper.BlockedAddr(addr) {
		return framedcointypes.ErrNotSupported.Wrapf("%s is a module account", recipient)
	}
	return app.Deliver(func(ctx sdk.Context) error {
		return app.mintTo(ctx, addr, amount)
	})
}

// Send transfers base currency between two accounts. Module accounts, the
// certificate escrow included, never accept plain transfers.
func (app *App) Send(from, to string, amount math.Int) error {
	fromAddr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return err
	}
	toAddr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return err
	}
	if app.BankKeeper.BlockedAddr(toAddr) {
		return framedcointypes.ErrNotSupported.Wrapf("%s does not accept direct transfers", to)
	}
	return app.Deliver(func(ctx sdk.Context) error {
		return app.BankKeeper.SendCoins(ctx, fromAddr, toAddr, sdk.NewCoins(sdk.NewCoin(appconsts.BaseDenom, amount)))
	})
}

// TransferCertificate moves certificate id from sender to recipient.
func (app *App) TransferCertificate(sender, recipient string, id uint64) error {
	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return err
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return err
	}
	return app.Deliver(func(ctx sdk.Context) error {
		return app.RegistryKeeper.Transfer(ctx, id, senderAddr, recipientAddr)
	})
}

// CertificatesByHolder returns the certificates currently held by holder.
func (app *App) CertificatesByHolder(holder string) ([]framedcointypes.IdentifiedCertificate, error) {
	addr, err := sdk.AccAddressFromBech32(holder)
	if err != nil {
		return nil, err
	}

	var out []framedcointypes.IdentifiedCertificate
	err = app.Query(func(ctx sdk.Context) error {
		ids, err := app.RegistryKeeper.IdentitiesOf(ctx, addr)
		if err != nil {
			return err
		}
		for _, id := range ids {
			cert, err := app.FramedcoinKeeper.Certificate(ctx, id)
			if err != nil {
				return err
			}
			out = append(out, framedcointypes.IdentifiedCertificate{ID: id, Certificate: cert})
		}
		return nil
	})
	return out, err
}

// Balance returns the base currency held by addr.
func (app *App) Balance(addr string) (sdk.Coin, error) {
	accAddr, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return sdk.Coin{}, err
	}

	var balance sdk.Coin
	err = app.Query(func(ctx sdk.Context) error {
		balance = app.BankKeeper.GetBalance(ctx, accAddr, appconsts.BaseDenom)
		return nil
	})
	return balance, err
}
