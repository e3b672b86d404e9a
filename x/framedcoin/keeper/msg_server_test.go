package keeper_test

import (
	"errors"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

func (suite *KeeperTestSuite) TestMint() {
	var payment sdk.Coin

	testCases := []struct {
		name      string
		setupTest func()
		expError  error
	}{
		{
			name: "success",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
			},
		},
		{
			name: "success with exact minimum payment",
			setupTest: func() {
				payment = suite.sufficientPayment(0)
			},
		},
		{
			name: "payment one below minimum",
			setupTest: func() {
				payment = suite.sufficientPayment(-1)
			},
			expError: types.ErrInsufficientPayment,
		},
		{
			name: "paused",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
				_, err := suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: owner.String()})
				suite.Require().NoError(err)
			},
			expError: types.ErrPaused,
		},
		{
			name: "oracle unavailable",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
				suite.oracle.err = errors.New("no answer")
			},
			expError: types.ErrOracleUnavailable,
		},
		{
			name: "invalid oracle answer",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
				suite.oracle.rate = types.NewRate(math.ZeroInt(), 8)
			},
			expError: types.ErrOracleUnavailable,
		},
		{
			name: "payment transfer fails",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
				suite.bank.failSend = errors.New("bank offline")
			},
			expError: types.ErrTransferFailed,
		},
		{
			name: "payer cannot cover payment",
			setupTest: func() {
				payment = suite.sufficientPayment(100)
				suite.bank.balances[client1.String()] = math.NewInt(1)
			},
			expError: types.ErrTransferFailed,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			tc.setupTest()
			suite.resetEvents()

			balanceBefore := suite.bank.balance(client1)
			resp, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{Sender: client1.String(), Payment: payment})

			if tc.expError != nil {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(resp)

				counter, err := suite.keeper.TokenCounter(suite.ctx)
				suite.Require().NoError(err)
				suite.Require().Zero(counter)
				suite.Require().True(suite.escrowed().IsZero())
				suite.Require().True(suite.unwithdrawnFees().IsZero())
				suite.Require().True(balanceBefore.Equal(suite.bank.balance(client1)))
				ids, err := suite.registry.IdentitiesOf(suite.ctx, client1)
				suite.Require().NoError(err)
				suite.Require().Empty(ids)
				suite.requireEvents()
				return
			}

			suite.Require().NoError(err)
			params := suite.params()
			expNet := payment.Amount.Sub(params.MintingFee)

			suite.Require().Equal(uint64(1), resp.ID)
			suite.Require().True(expNet.Equal(resp.NetValue))
			suite.Require().True(expNet.MulRaw(1234).Equal(resp.BoughtFor))

			cert, err := suite.keeper.Certificate(suite.ctx, resp.ID)
			suite.Require().NoError(err)
			suite.Require().True(expNet.Equal(cert.Value))
			suite.Require().True(resp.BoughtFor.Equal(cert.BoughtFor))
			suite.Require().True(boughtAt.Equal(cert.BoughtAt))
			suite.Require().True(cert.SoldFor.IsZero())
			suite.Require().True(cert.SoldAt.IsZero())
			suite.Require().False(cert.IsCashedOut())

			holder, err := suite.registry.OwnerOf(suite.ctx, resp.ID)
			suite.Require().NoError(err)
			suite.Require().True(client1.Equals(holder))

			suite.Require().True(params.MintingFee.Equal(suite.unwithdrawnFees()))
			suite.Require().True(expNet.Equal(suite.escrowed()))
			suite.Require().True(balanceBefore.Sub(payment.Amount).Equal(suite.bank.balance(client1)))
			suite.Require().Len(resp.Events, 1)
			suite.Require().Equal(types.EventMinted{ID: 1, NetValue: expNet}, resp.Events[0])
			suite.requireEvents(types.EventTypeMinted)
			suite.requireInvariants()
		})
	}
}

func (suite *KeeperTestSuite) TestMintInsufficientPaymentDetails() {
	params := suite.params()
	paid := params.MinimumPayment().SubRaw(1)

	_, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{
		Sender:  client1.String(),
		Payment: sdk.NewCoin(appconsts.BaseDenom, paid),
	})

	var payErr *types.InsufficientPaymentError
	suite.Require().ErrorAs(err, &payErr)
	suite.Require().True(params.MinimumValueToMint.Equal(payErr.MinimumValueToMint))
	suite.Require().True(params.MintingFee.Equal(payErr.MintingFee))
	suite.Require().True(params.MinimumPayment().Equal(payErr.MinimumPayment))
	suite.Require().True(paid.Equal(payErr.Paid))
}

func (suite *KeeperTestSuite) TestMintAssignsIncreasingIDs() {
	for i, sender := range []sdk.AccAddress{client1, client2, client1, owner} {
		resp := suite.mint(sender, int64(i))
		suite.Require().Equal(uint64(i+1), resp.ID)
	}

	counter, err := suite.keeper.TokenCounter(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(4), counter)

	ids, err := suite.registry.IdentitiesOf(suite.ctx, client1)
	suite.Require().NoError(err)
	suite.Require().Equal([]uint64{1, 3}, ids)

	// ids are never reused after a burn
	_, err = suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: owner.String(), ID: 4})
	suite.Require().NoError(err)
	_, err = suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: owner.String(), ID: 4})
	suite.Require().NoError(err)
	resp := suite.mint(client2, 0)
	suite.Require().Equal(uint64(5), resp.ID)
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestMintUsesUpdatedParams() {
	_, err := suite.keeper.SetMintingFee(suite.ctx, &types.MsgSetMintingFee{Sender: owner.String(), MintingFee: math.NewInt(1_000)})
	suite.Require().NoError(err)
	_, err = suite.keeper.SetMinimumValueToMint(suite.ctx, &types.MsgSetMinimumValueToMint{Sender: owner.String(), MinimumValueToMint: math.NewInt(2_000)})
	suite.Require().NoError(err)

	minimumPayment, err := suite.keeper.MinimumPayment(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(3_000).Equal(minimumPayment))

	resp, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{Sender: client1.String(), Payment: sdk.NewCoin(appconsts.BaseDenom, math.NewInt(3_000))})
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(2_000).Equal(resp.NetValue))
	suite.Require().True(math.NewInt(1_000).Equal(suite.unwithdrawnFees()))
}

func (suite *KeeperTestSuite) TestCashOut() {
	var (
		id     uint64
		sender sdk.AccAddress
	)

	testCases := []struct {
		name      string
		setupTest func()
		expError  error
	}{
		{
			name: "success",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
			},
		},
		{
			name: "not the holder",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client2
			},
			expError: types.ErrUnauthorizedCertificateAccess,
		},
		{
			name: "owner is not the holder",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = owner
			},
			expError: types.ErrUnauthorizedCertificateAccess,
		},
		{
			name: "never minted",
			setupTest: func() {
				id = 42
				sender = client1
			},
			expError: types.ErrNotFound,
		},
		{
			name: "already cashed out",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
				_, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
				suite.Require().NoError(err)
			},
			expError: types.ErrAlreadyCashedOut,
		},
		{
			name: "oracle unavailable",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
				suite.oracle.err = errors.New("stale round")
			},
			expError: types.ErrOracleUnavailable,
		},
		{
			name: "payout transfer fails",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
				suite.bank.failSend = errors.New("bank offline")
			},
			expError: types.ErrTransferFailed,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			tc.setupTest()
			suite.ctx = suite.ctx.WithBlockTime(soldAt)
			suite.resetEvents()

			before, _ := suite.keeper.Certificate(suite.ctx, id)
			escrowedBefore := suite.escrowed()
			balanceBefore := suite.bank.balance(sender)

			resp, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: sender.String(), ID: id})

			if tc.expError != nil {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(resp)

				after, _ := suite.keeper.Certificate(suite.ctx, id)
				suite.Require().Equal(before, after)
				suite.Require().True(escrowedBefore.Equal(suite.escrowed()))
				suite.Require().True(balanceBefore.Equal(suite.bank.balance(sender)))
				suite.requireEvents()
				suite.requireInvariants()
				return
			}

			suite.Require().NoError(err)
			suite.Require().True(before.Value.Equal(resp.Value))
			suite.Require().True(before.Value.MulRaw(1234).Equal(resp.SoldFor))

			after, err := suite.keeper.Certificate(suite.ctx, id)
			suite.Require().NoError(err)
			suite.Require().True(after.Value.IsZero())
			suite.Require().True(after.IsCashedOut())
			suite.Require().True(soldAt.Equal(after.SoldAt))
			suite.Require().True(resp.SoldFor.Equal(after.SoldFor))
			suite.Require().True(before.BoughtFor.Equal(after.BoughtFor))
			suite.Require().True(before.BoughtAt.Equal(after.BoughtAt))

			suite.Require().True(escrowedBefore.Sub(before.Value).Equal(suite.escrowed()))
			suite.Require().True(balanceBefore.Add(before.Value).Equal(suite.bank.balance(sender)))
			suite.Require().Equal([]types.Event{types.EventCashedOut{ID: id, Value: before.Value}}, resp.Events)
			suite.requireEvents(types.EventTypeCashedOut)
			suite.requireInvariants()
		})
	}
}

func (suite *KeeperTestSuite) TestCashOutAtDifferentRate() {
	resp := suite.mint(client1, 0)

	// the feed now reports 2000.00 with two decimals
	suite.oracle.rate = types.NewRate(math.NewInt(200_000), 2)
	cashed, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: resp.ID})
	suite.Require().NoError(err)
	suite.Require().True(resp.NetValue.MulRaw(2000).Equal(cashed.SoldFor))

	cert, err := suite.keeper.Certificate(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	suite.Require().True(resp.NetValue.MulRaw(1234).Equal(cert.BoughtFor))
}

func (suite *KeeperTestSuite) TestCashOutAfterRegistryTransfer() {
	id := suite.mint(client1, 0).ID
	suite.Require().NoError(suite.registry.Transfer(suite.ctx, id, client1, client2))

	_, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
	suite.Require().ErrorIs(err, types.ErrUnauthorizedCertificateAccess)

	resp, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client2.String(), ID: id})
	suite.Require().NoError(err)
	suite.Require().True(resp.Value.IsPositive())
}

func (suite *KeeperTestSuite) TestCashOutWhilePaused() {
	id := suite.mint(client1, 0).ID
	_, err := suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: owner.String()})
	suite.Require().NoError(err)

	_, err = suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
	suite.Require().NoError(err)
	_, err = suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: client1.String(), ID: id})
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestBurn() {
	var (
		id     uint64
		sender sdk.AccAddress
	)

	testCases := []struct {
		name      string
		setupTest func()
		expError  error
	}{
		{
			name: "success",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
				_, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
				suite.Require().NoError(err)
			},
		},
		{
			name: "still holds value",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client1
			},
			expError: types.ErrStillHoldsValue,
		},
		{
			name: "not the holder",
			setupTest: func() {
				id = suite.mint(client1, 0).ID
				sender = client2
				_, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
				suite.Require().NoError(err)
			},
			expError: types.ErrUnauthorizedCertificateAccess,
		},
		{
			name: "never minted",
			setupTest: func() {
				id = 7
				sender = client1
			},
			expError: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			tc.setupTest()
			suite.resetEvents()

			resp, err := suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: sender.String(), ID: id})

			if tc.expError != nil {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(resp)
				suite.requireEvents()
				suite.requireInvariants()
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal([]types.Event{types.EventBurnt{ID: id}}, resp.Events)
			suite.requireEvents(types.EventTypeBurnt)

			_, err = suite.keeper.Certificate(suite.ctx, id)
			suite.Require().ErrorIs(err, types.ErrNotFound)
			_, err = suite.registry.OwnerOf(suite.ctx, id)
			suite.Require().Error(err)

			// a burnt identity behaves like one never minted
			_, err = suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: id})
			suite.Require().ErrorIs(err, types.ErrNotFound)
			_, err = suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: client1.String(), ID: id})
			suite.Require().ErrorIs(err, types.ErrNotFound)
			suite.requireInvariants()
		})
	}
}

func (suite *KeeperTestSuite) TestBurnStillHoldsValueDetails() {
	resp := suite.mint(client1, 10)

	_, err := suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: client1.String(), ID: resp.ID})
	var valueErr *types.StillHoldsValueError
	suite.Require().ErrorAs(err, &valueErr)
	suite.Require().True(resp.NetValue.Equal(valueErr.Value))

	cert, err := suite.keeper.Certificate(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	suite.Require().True(resp.NetValue.Equal(cert.Value))
}

func (suite *KeeperTestSuite) TestWithdrawFees() {
	suite.mint(client1, 0)
	suite.mint(client2, 500)
	fee := suite.params().MintingFee
	expected := fee.MulRaw(2)
	suite.Require().True(expected.Equal(suite.unwithdrawnFees()))

	_, err := suite.keeper.WithdrawFees(suite.ctx, &types.MsgWithdrawFees{Sender: client1.String()})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
	suite.Require().True(expected.Equal(suite.unwithdrawnFees()))

	suite.bank.failSend = errors.New("bank offline")
	_, err = suite.keeper.WithdrawFees(suite.ctx, &types.MsgWithdrawFees{Sender: owner.String()})
	suite.Require().ErrorIs(err, types.ErrTransferFailed)
	suite.Require().True(expected.Equal(suite.unwithdrawnFees()))
	suite.bank.failSend = nil

	suite.resetEvents()
	balanceBefore := suite.bank.balance(owner)
	resp, err := suite.keeper.WithdrawFees(suite.ctx, &types.MsgWithdrawFees{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().True(expected.Equal(resp.Amount))
	suite.Require().True(suite.unwithdrawnFees().IsZero())
	suite.Require().True(balanceBefore.Add(expected).Equal(suite.bank.balance(owner)))
	suite.requireEvents(types.EventTypeFeesWithdrawn)
	suite.requireInvariants()

	// escrowed value is never touched by a withdrawal
	suite.Require().True(suite.escrowed().Equal(suite.bank.balance(types.EscrowAddress)))

	// nothing left to withdraw
	suite.resetEvents()
	resp, err = suite.keeper.WithdrawFees(suite.ctx, &types.MsgWithdrawFees{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().True(resp.Amount.IsZero())
	suite.Require().True(balanceBefore.Add(expected).Equal(suite.bank.balance(owner)))
	suite.requireEvents(types.EventTypeFeesWithdrawn)
}

func (suite *KeeperTestSuite) TestUnwithdrawnFeesOwnerOnly() {
	_, err := suite.keeper.UnwithdrawnFees(suite.ctx, client1.String())
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.keeper.UnwithdrawnFees(suite.ctx, "bogus")
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidAddress)
}

func (suite *KeeperTestSuite) TestSetParams() {
	testCases := []struct {
		name     string
		msg      func() error
		expError error
	}{
		{
			name: "set minting fee",
			msg: func() error {
				_, err := suite.keeper.SetMintingFee(suite.ctx, &types.MsgSetMintingFee{Sender: owner.String(), MintingFee: math.NewInt(7)})
				return err
			},
		},
		{
			name: "set minimum value",
			msg: func() error {
				_, err := suite.keeper.SetMinimumValueToMint(suite.ctx, &types.MsgSetMinimumValueToMint{Sender: owner.String(), MinimumValueToMint: math.NewInt(1)})
				return err
			},
		},
		{
			name: "set zero minimum value",
			msg: func() error {
				_, err := suite.keeper.SetMinimumValueToMint(suite.ctx, &types.MsgSetMinimumValueToMint{Sender: owner.String(), MinimumValueToMint: math.ZeroInt()})
				return err
			},
			expError: types.ErrInvalidParams,
		},
		{
			name: "set zero minting fee",
			msg: func() error {
				_, err := suite.keeper.SetMintingFee(suite.ctx, &types.MsgSetMintingFee{Sender: owner.String(), MintingFee: math.ZeroInt()})
				return err
			},
		},
		{
			name: "minting fee from non-owner",
			msg: func() error {
				_, err := suite.keeper.SetMintingFee(suite.ctx, &types.MsgSetMintingFee{Sender: client1.String(), MintingFee: math.NewInt(7)})
				return err
			},
			expError: types.ErrUnauthorized,
		},
		{
			name: "minimum value from non-owner",
			msg: func() error {
				_, err := suite.keeper.SetMinimumValueToMint(suite.ctx, &types.MsgSetMinimumValueToMint{Sender: client2.String(), MinimumValueToMint: math.NewInt(7)})
				return err
			},
			expError: types.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.resetEvents()
			before := suite.params()

			err := tc.msg()
			if tc.expError != nil {
				suite.Require().ErrorIs(err, tc.expError)
				after := suite.params()
				suite.Require().True(before.MintingFee.Equal(after.MintingFee))
				suite.Require().True(before.MinimumValueToMint.Equal(after.MinimumValueToMint))
				suite.requireEvents()
				return
			}

			suite.Require().NoError(err)
			suite.requireEvents(types.EventTypeParamsUpdated)
		})
	}
}

func (suite *KeeperTestSuite) TestSetParamsKeepsExistingCertificates() {
	resp := suite.mint(client1, 0)

	_, err := suite.keeper.SetMintingFee(suite.ctx, &types.MsgSetMintingFee{Sender: owner.String(), MintingFee: math.NewInt(1)})
	suite.Require().NoError(err)

	cert, err := suite.keeper.Certificate(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	suite.Require().True(resp.NetValue.Equal(cert.Value))
	suite.requireInvariants()
}

func (suite *KeeperTestSuite) TestPause() {
	_, err := suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: client1.String()})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	suite.resetEvents()
	resp, err := suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().Equal([]types.Event{types.EventPaused{}}, resp.Events)
	suite.requireEvents(types.EventTypePaused)

	paused, err := suite.keeper.Paused(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(paused)

	// pausing twice changes nothing
	suite.resetEvents()
	resp, err = suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().Empty(resp.Events)
	suite.requireEvents()

	_, err = suite.keeper.Unpause(suite.ctx, &types.MsgUnpause{Sender: client2.String()})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	suite.resetEvents()
	_, err = suite.keeper.Unpause(suite.ctx, &types.MsgUnpause{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.requireEvents(types.EventTypeUnpaused)

	suite.resetEvents()
	resp2, err := suite.keeper.Unpause(suite.ctx, &types.MsgUnpause{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().Empty(resp2.Events)
	suite.requireEvents()

	paused, err = suite.keeper.Paused(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().False(paused)
	suite.mint(client1, 0)
}

func (suite *KeeperTestSuite) TestZeroBlockTime() {
	suite.ctx = suite.ctx.WithBlockTime(time.Time{})
	_, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{Sender: client1.String(), Payment: suite.sufficientPayment(0)})
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidRequest)

	counter, err := suite.keeper.TokenCounter(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Zero(counter)
}

func (suite *KeeperTestSuite) TestInvalidSender() {
	_, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{Sender: "nope", Payment: suite.sufficientPayment(0)})
	suite.Require().Error(err)
	_, err = suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: "", ID: 1})
	suite.Require().Error(err)
}

// TestLedgerScenario walks a certificate through its full lifecycle with the
// default configuration and mock rate.
func (suite *KeeperTestSuite) TestLedgerScenario() {
	payment := sdk.NewCoin(appconsts.BaseDenom, math.NewInt(1_005_000))
	minted, err := suite.keeper.Mint(suite.ctx, &types.MsgMint{Sender: client1.String(), Payment: payment})
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(1_000_000).Equal(minted.NetValue))
	suite.Require().True(math.NewInt(1_234_000_000).Equal(minted.BoughtFor))

	total, err := suite.keeper.TotalEscrowedValueReference(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(1_234_000_000).Equal(total))

	suite.ctx = suite.ctx.WithBlockTime(soldAt)
	cashed, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: minted.ID})
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(1_000_000).Equal(cashed.Value))
	suite.Require().True(math.NewInt(1_234_000_000).Equal(cashed.SoldFor))

	_, err = suite.keeper.Burn(suite.ctx, &types.MsgBurn{Sender: client1.String(), ID: minted.ID})
	suite.Require().NoError(err)

	withdrawn, err := suite.keeper.WithdrawFees(suite.ctx, &types.MsgWithdrawFees{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().True(math.NewInt(appconsts.DefaultMintingFee).Equal(withdrawn.Amount))

	suite.Require().True(math.NewInt(10_000_000 - 5_000).Equal(suite.bank.balance(client1)))
	suite.Require().True(math.NewInt(10_000_000 + 5_000).Equal(suite.bank.balance(owner)))
	suite.Require().True(suite.bank.balance(types.EscrowAddress).IsZero())
	suite.requireInvariants()
}
