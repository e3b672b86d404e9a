package types

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

func TestMsgMint_ValidateBasic(t *testing.T) {
	validAddress := sdk.AccAddress("test_sender__________").String()
	validPayment := sdk.NewCoin(appconsts.BaseDenom, math.NewInt(15000))

	tests := []struct {
		name    string
		msg     *MsgMint
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message",
			msg:  &MsgMint{Sender: validAddress, Payment: validPayment},
		},
		{
			name:    "invalid sender address",
			msg:     &MsgMint{Sender: "invalid", Payment: validPayment},
			wantErr: true,
			errMsg:  "invalid sender",
		},
		{
			name:    "wrong denomination",
			msg:     &MsgMint{Sender: validAddress, Payment: sdk.NewCoin("wrongdenom", math.NewInt(15000))},
			wantErr: true,
			errMsg:  "payment must be in",
		},
		{
			name:    "negative amount",
			msg:     &MsgMint{Sender: validAddress, Payment: sdk.Coin{Denom: appconsts.BaseDenom, Amount: math.NewInt(-100)}},
			wantErr: true,
			errMsg:  "negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgSetters_ValidateBasic(t *testing.T) {
	validAddress := sdk.AccAddress("test_owner___________").String()

	require.NoError(t, (&MsgSetMintingFee{Sender: validAddress, MintingFee: math.NewInt(1)}).ValidateBasic())
	require.Error(t, (&MsgSetMintingFee{Sender: validAddress, MintingFee: math.NewInt(-1)}).ValidateBasic())
	require.Error(t, (&MsgSetMintingFee{Sender: validAddress}).ValidateBasic())
	require.NoError(t, (&MsgSetMinimumValueToMint{Sender: validAddress, MinimumValueToMint: math.ZeroInt()}).ValidateBasic())
	require.Error(t, (&MsgSetMinimumValueToMint{Sender: "", MinimumValueToMint: math.ZeroInt()}).ValidateBasic())
	require.Error(t, (&MsgPause{Sender: "cosmos1invalid"}).ValidateBasic())
}
