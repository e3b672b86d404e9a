package app

import (
	"os"
	"path/filepath"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultNodeHome is the node's home directory unless FRAMEDCOIN_HOME is set.
var DefaultNodeHome string

func init() {
	initConfig()
	initHome()
}

func initHome() {
	userHomeDir := os.Getenv("FRAMEDCOIN_HOME")

	if userHomeDir == "" {
		var err error
		userHomeDir, err = os.UserHomeDir()
		if err != nil {
			panic(err)
		}
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

func initConfig() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	config.Seal()
}
