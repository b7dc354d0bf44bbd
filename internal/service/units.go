package service

import (
	"math/big"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
)

// EtherDecimals is the number of decimals of the native EVM currency.
const EtherDecimals = 18

// FormatUnits renders value (in the smallest unit) as a decimal string with
// the given number of decimals, trimming trailing zeros: 1500000000000000000
// with 18 decimals is "1.5".
func FormatUnits(value *big.Int, decimals int) (string, error) {
	if value == nil {
		return "", apperr.FromUnits(ErrNilAmount)
	}
	if value.Sign() < 0 {
		return "", apperr.FromUnits(ErrNegativeAmount)
	}

	base := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(value, base, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String(), nil
	}

	fracStr := frac.String()
	fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")

	return whole.String() + "." + fracStr, nil
}
