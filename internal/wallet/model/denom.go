package model

// Denomination describes the wallet's native coin.
type Denomination struct {
	// Base is the on-chain unit, e.g. "ulmn".
	Base string
	// Display is the unit shown to users, e.g. "LMN".
	Display string
	// Exponent is the number of decimal places between Base and Display.
	Exponent int32
}

// DefaultDenomination is the LMN coin with micro base units.
var DefaultDenomination = Denomination{Base: "ulmn", Display: "LMN", Exponent: 6}

// DefaultAddressPrefix is the bech32 human readable part of account addresses.
const DefaultAddressPrefix = "lmn"
