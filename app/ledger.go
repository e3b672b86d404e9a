package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// Mint pays payment base currency from sender into escrow for a new
// certificate.
func (app *App) Mint(sender string, payment math.Int) (resp *framedcointypes.MsgMintResponse, err error) {
	msg := &framedcointypes.MsgMint{Sender: sender, Payment: sdk.NewCoin(appconsts.BaseDenom, payment)}
	err = app.Deliver(func(ctx sdk.Context) error {
		resp, err = app.FramedcoinKeeper.Mint(ctx, msg)
		return err
	})
	return resp, err
}

func (app *App) CashOut(sender string, id uint64) (resp *framedcointypes.MsgCashOutResponse, err error) {
	msg := &framedcointypes.MsgCashOut{Sender: sender, ID: id}
	err = app.Deliver(func(ctx sdk.Context) error {
		resp, err = app.FramedcoinKeeper.CashOut(ctx, msg)
		return err
	})
	return resp, err
}

func (app *App) Burn(sender string, id uint64) (resp *framedcointypes.MsgBurnResponse, err error) {
	msg := &framedcointypes.MsgBurn{Sender: sender, ID: id}
	err = app.Deliver(func(ctx sdk.Context) error {
		resp, err = app.FramedcoinKeeper.Burn(ctx, msg)
		return err
	})
	return resp, err
}

func (app *App) WithdrawFees(sender string) (resp *framedcointypes.MsgWithdrawFeesResponse, err error) {
	msg := &framedcointypes.MsgWithdrawFees{Sender: sender}
	err = app.Deliver(func(ctx sdk.Context) error {
		resp, err = app.FramedcoinKeeper.WithdrawFees(ctx, msg)
		return err
	})
	return resp, err
}

func (app *App) SetMintingFee(sender string, fee math.Int) error {
	msg := &framedcointypes.MsgSetMintingFee{Sender: sender, MintingFee: fee}
	return app.Deliver(func(ctx sdk.Context) error {
		_, err := app.FramedcoinKeeper.SetMintingFee(ctx, msg)
		return err
	})
}

func (app *App) SetMinimumValueToMint(sender string, minimum math.Int) error {
	msg := &framedcointypes.MsgSetMinimumValueToMint{Sender: sender, MinimumValueToMint: minimum}
	return app.Deliver(func(ctx sdk.Context) error {
		_, err := app.FramedcoinKeeper.SetMinimumValueToMint(ctx, msg)
		return err
	})
}

// SetPaused pauses or resumes minting.
func (app *App) SetPaused(sender string, paused bool) error {
	return app.Deliver(func(ctx sdk.Context) error {
		var err error
		if paused {
			_, err = app.FramedcoinKeeper.Pause(ctx, &framedcointypes.MsgPause{Sender: sender})
		} else {
			_, err = app.FramedcoinKeeper.Unpause(ctx, &framedcointypes.MsgUnpause{Sender: sender})
		}
		return err
	})
}

// Certificate returns the record of certificate id.
func (app *App) Certificate(id uint64) (cert framedcointypes.Certificate, err error) {
	err = app.Query(func(ctx sdk.Context) error {
		cert, err = app.FramedcoinKeeper.Certificate(ctx, id)
		return err
	})
	return cert, err
}

// Certificates returns every certificate record in id order.
func (app *App) Certificates() (certs []framedcointypes.IdentifiedCertificate, err error) {
	err = app.Query(func(ctx sdk.Context) error {
		certs, err = app.FramedcoinKeeper.Certificates(ctx)
		return err
	})
	return certs, err
}

// UnwithdrawnFees returns the fees awaiting withdrawal. Only the owner may
// read them.
func (app *App) UnwithdrawnFees(caller string) (fees math.Int, err error) {
	err = app.Query(func(ctx sdk.Context) error {
		fees, err = app.FramedcoinKeeper.UnwithdrawnFees(ctx, caller)
		return err
	})
	return fees, err
}

// Params returns the current minting parameters.
func (app *App) Params() (params framedcointypes.Params, err error) {
	err = app.Query(func(ctx sdk.Context) error {
		params, err = app.FramedcoinKeeper.Params(ctx)
		return err
	})
	return params, err
}

// Status summarizes the ledger at the latest height.
type Status struct {
	ChainID                     string                 `json:"chain_id"`
	Height                      int64                  `json:"height"`
	Owner                       string                 `json:"owner"`
	Params                      framedcointypes.Params `json:"params"`
	MinimumPayment              math.Int               `json:"minimum_payment"`
	TokenCounter                uint64                 `json:"token_counter"`
	Paused                      bool                   `json:"paused"`
	TotalEscrowedValue          math.Int               `json:"total_escrowed_value"`
	TotalEscrowedValueReference *math.Int              `json:"total_escrowed_value_reference,omitempty"`
	ExchangeRate                *math.Int              `json:"exchange_rate,omitempty"`
	PriceFeed                   string                 `json:"price_feed"`
	OracleError                 string                 `json:"oracle_error,omitempty"`
}

// Status reads every ledger view. Oracle failures are reported in
// OracleError instead of failing the whole status.
func (app *App) Status() (Status, error) {
	k := app.FramedcoinKeeper
	status := Status{
		ChainID:   app.chainID,
		Height:    app.LastHeight(),
		Owner:     k.Owner().String(),
		PriceFeed: k.PriceFeed(),
	}

	err := app.Query(func(ctx sdk.Context) error {
		var err error
		if status.Params, err = k.Params(ctx); err != nil {
			return err
		}
		if status.MinimumPayment, err = k.MinimumPayment(ctx); err != nil {
			return err
		}
		if status.TokenCounter, err = k.TokenCounter(ctx); err != nil {
			return err
		}
		if status.Paused, err = k.Paused(ctx); err != nil {
			return err
		}
		if status.TotalEscrowedValue, err = k.TotalEscrowedValue(ctx); err != nil {
			return err
		}

		rate, err := k.ExchangeRate(ctx)
		if err != nil {
			status.OracleError = err.Error()
			return nil
		}
		status.ExchangeRate = &rate
		reference, err := k.TotalEscrowedValueReference(ctx)
		if err != nil {
			status.OracleError = err.Error()
			return nil
		}
		status.TotalEscrowedValueReference = &reference
		return nil
	})
	return status, err
}
