// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/aptoskit/aptoskit/fault"
)

// the SLIP-0010 curve constant for ed25519 master key derivation
const slip10Ed25519Key = "ed25519 seed"

// hardened index offset
const hardenedOffset = uint32(0x80000000)

// CoinType - the registered BIP-44 coin type of the chain
const CoinType = 637

// GenerateMnemonic - a fresh 12 word BIP-39 phrase
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if nil != err {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// DerivationPath - the conventional account path
// m/44'/637'/{account}'/0'/0'
func DerivationPath(accountIndex uint32) string {
	return fmt.Sprintf("m/44'/%d'/%d'/0'/0'", CoinType, accountIndex)
}

// Ed25519AccountFromMnemonic - derive an account from a BIP-39
// phrase and a fully hardened BIP-44 style path
//
// the phrase is checksum validated, converted to a seed with an
// empty passphrase, then walked with SLIP-0010 ed25519 derivation;
// the same phrase, path and word order always produce the same key
func Ed25519AccountFromMnemonic(mnemonic string, path string) (*Ed25519Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fault.InvalidMnemonic
	}
	indexes, err := parseDerivationPath(path)
	if nil != err {
		return nil, err
	}

	seed := bip39.NewSeed(mnemonic, "")

	key, chainCode := slip10MasterKey(seed)
	for _, index := range indexes {
		key, chainCode = slip10ChildKey(key, chainCode, index)
	}
	return Ed25519AccountFromSeed(key)
}

// parseDerivationPath - "m/44'/637'/0'/0'/0'" to raw child indexes
//
// ed25519 only supports hardened derivation, so every component
// must carry the hardening mark (' or h)
func parseDerivationPath(path string) ([]uint32, error) {
	components := strings.Split(path, "/")
	if len(components) < 2 || "m" != components[0] {
		return nil, fault.InvalidDerivationPath
	}

	indexes := make([]uint32, 0, len(components)-1)
	for _, component := range components[1:] {
		hardened := false
		if strings.HasSuffix(component, "'") || strings.HasSuffix(component, "h") {
			hardened = true
			component = component[:len(component)-1]
		}
		if !hardened {
			return nil, fault.DerivationPathNotHardened
		}
		value, err := strconv.ParseUint(component, 10, 32)
		if nil != err || uint32(value) >= hardenedOffset {
			return nil, fault.InvalidDerivationPath
		}
		indexes = append(indexes, uint32(value))
	}
	if 0 == len(indexes) {
		return nil, fault.InvalidDerivationPath
	}
	return indexes, nil
}

// slip10MasterKey - SLIP-0010 master key: HMAC-SHA512 over the seed
func slip10MasterKey(seed []byte) (key []byte, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte(slip10Ed25519Key))
	mac.Write(seed)
	digest := mac.Sum(nil)
	return digest[:32], digest[32:]
}

// slip10ChildKey - one hardened derivation step
func slip10ChildKey(key []byte, chainCode []byte, index uint32) ([]byte, []byte) {
	var serialized [4]byte
	binary.BigEndian.PutUint32(serialized[:], index+hardenedOffset)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write([]byte{0x00})
	mac.Write(key)
	mac.Write(serialized[:])
	digest := mac.Sum(nil)
	return digest[:32], digest[32:]
}
