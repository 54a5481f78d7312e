package currency

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrBaseRequired      = errors.New("base currency is required")
	ErrTargetRequired    = errors.New("target currency is required")
	ErrSameCodes         = errors.New("base and target must be different")
	ErrBaseUnsupported   = errors.New("base currency not supported")
	ErrTargetUnsupported = errors.New("target currency not supported")
)

type Validator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

func (v *Validator) ValidateCodes(base, target string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if target == "" {
		return ErrTargetRequired
	}
	if base == target {
		return ErrSameCodes
	}
	if _, ok := v.supportedCodesSet[base]; !ok {
		return ErrBaseUnsupported
	}
	if _, ok := v.supportedCodesSet[target]; !ok {
		return ErrTargetUnsupported
	}
	return nil
}

func (v *Validator) ValidateBase(base string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if _, ok := v.supportedCodesSet[base]; !ok {
		return ErrBaseUnsupported
	}
	return nil
}

func (v *Validator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supportedCurrencies map[string]struct{}) *Validator {
	codesSet := maps.Clone(supportedCurrencies)
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &Validator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
