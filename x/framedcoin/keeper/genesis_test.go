package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/x/framedcoin/keeper"
	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	first := suite.mint(client1, 0)
	second := suite.mint(client2, 250)
	_, err := suite.keeper.CashOut(suite.ctx, &types.MsgCashOut{Sender: client1.String(), ID: first.ID})
	suite.Require().NoError(err)
	_, err = suite.keeper.Pause(suite.ctx, &types.MsgPause{Sender: owner.String()})
	suite.Require().NoError(err)

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(exported.Validate())
	suite.Require().True(exported.Paused)
	suite.Require().Equal(uint64(2), exported.Counter)
	suite.Require().Len(exported.Certificates, 2)
	suite.Require().True(second.NetValue.Equal(exported.TotalEscrowed()))

	// import into a fresh store; the registry is rebuilt from the same holders
	suite.SetupTest()
	suite.Require().NoError(suite.registry.RegisterNew(suite.ctx, first.ID, client1))
	suite.Require().NoError(suite.registry.RegisterNew(suite.ctx, second.ID, client2))
	suite.Require().NoError(suite.keeper.InitGenesis(suite.ctx, exported))

	counter, err := suite.keeper.TokenCounter(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), counter)
	suite.Require().True(second.NetValue.Equal(suite.escrowed()))
	suite.Require().True(exported.UnwithdrawnFees.Equal(suite.unwithdrawnFees()))

	paused, err := suite.keeper.Paused(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(paused)

	cert, err := suite.keeper.Certificate(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.Require().True(cert.IsCashedOut())

	// the next id continues after the imported counter
	_, err = suite.keeper.Unpause(suite.ctx, &types.MsgUnpause{Sender: owner.String()})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(3), suite.mint(client1, 0).ID)
}

func (suite *KeeperTestSuite) TestInitGenesisRejectsInvalidState() {
	gs := types.DefaultGenesis()
	gs.Counter = 0
	gs.Certificates = []types.IdentifiedCertificate{
		{ID: 1, Certificate: types.NewCertificate(math.NewInt(1), math.NewInt(1), boughtAt)},
	}
	suite.Require().Error(suite.keeper.InitGenesis(suite.ctx, gs))
}

func (suite *KeeperTestSuite) TestInvariantsDetectCorruption() {
	resp := suite.mint(client1, 0)
	suite.requireInvariants()

	cert, err := suite.keeper.Certificate(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	cert.Value = cert.Value.AddRaw(1)
	suite.Require().NoError(suite.keeper.SetCertificate(suite.ctx, resp.ID, cert))

	msg, broken := keeper.EscrowedValueInvariant(suite.keeper)(suite.ctx)
	suite.Require().True(broken, msg)

	// a record above the counter
	suite.Require().NoError(suite.keeper.SetCertificate(suite.ctx, 9, cert))
	msg, broken = keeper.CertificatesInvariant(suite.keeper)(suite.ctx)
	suite.Require().True(broken, msg)
}

func (suite *KeeperTestSuite) TestEscrowBalanceInvariant() {
	suite.mint(client1, 0)
	suite.bank.balances[types.EscrowAddress.String()] = suite.bank.balance(types.EscrowAddress).SubRaw(1)

	msg, broken := keeper.EscrowBalanceInvariant(suite.keeper)(suite.ctx)
	suite.Require().True(broken, msg)
}

func (suite *KeeperTestSuite) TestLedgerPrimitives() {
	id, err := suite.keeper.CreateRecord(suite.ctx, math.NewInt(100), math.NewInt(123400), boughtAt)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), id)

	err = suite.keeper.DestroyRecord(suite.ctx, id)
	suite.Require().ErrorIs(err, types.ErrStillHoldsValue)

	suite.Require().NoError(suite.keeper.MarkSold(suite.ctx, id, math.NewInt(123400), soldAt))
	err = suite.keeper.MarkSold(suite.ctx, id, math.NewInt(1), soldAt)
	suite.Require().ErrorIs(err, types.ErrAlreadyCashedOut)
	suite.Require().True(suite.escrowed().IsZero())

	suite.Require().NoError(suite.keeper.DestroyRecord(suite.ctx, id))
	err = suite.keeper.DestroyRecord(suite.ctx, id)
	suite.Require().ErrorIs(err, types.ErrNotFound)
	err = suite.keeper.MarkSold(suite.ctx, id, math.NewInt(1), soldAt)
	suite.Require().ErrorIs(err, types.ErrNotFound)
}
