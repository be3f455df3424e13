package verilog

import (
	"math/big"

	"github.com/pkg/errors"
)

func bigZero() *big.Int { return big.NewInt(0) }

func malformedErr(err error) bool   { return errors.Is(err, ErrMalformedIR) }
func unsupportedErr(err error) bool { return errors.Is(err, ErrUnsupportedIR) }
func internalErrIs(err error) bool  { return errors.Is(err, ErrInternal) }
