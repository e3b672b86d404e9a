package encoding

import (
	addresscodec "cosmossdk.io/core/address"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkmodule "github.com/cosmos/cosmos-sdk/types/module"
)

// Config specifies the concrete encoding types used by the node's account
// and bank state.
type Config struct {
	InterfaceRegistry codectypes.InterfaceRegistry
	Codec             codec.Codec
	Amino             *codec.LegacyAmino
	AddressPrefix     string
	AddressCodec      addresscodec.Codec
}

// MakeConfig returns an encoding config with the standard SDK types and the
// interfaces of every given module registered.
func MakeConfig(moduleBasics ...sdkmodule.AppModuleBasic) Config {
	addressPrefix := sdk.GetConfig().GetBech32AccountAddrPrefix()

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	amino := codec.NewLegacyAmino()

	// Register the standard types from the Cosmos SDK on interfaceRegistry and amino.
	std.RegisterInterfaces(interfaceRegistry)
	std.RegisterLegacyAminoCodec(amino)

	for _, mod := range moduleBasics {
		mod.RegisterInterfaces(interfaceRegistry)
		mod.RegisterLegacyAminoCodec(amino)
	}

	return Config{
		InterfaceRegistry: interfaceRegistry,
		Codec:             codec.NewProtoCodec(interfaceRegistry),
		Amino:             amino,
		AddressPrefix:     addressPrefix,
		AddressCodec:      address.NewBech32Codec(addressPrefix),
	}
}
