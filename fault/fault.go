// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// InvalidError - construction and validation failures - keep in alphabetic order
var (
	AddressLength               = InvalidError("address length is invalid")
	AuthKeyLength               = InvalidError("authentication key length is invalid")
	BitmapIndexNotAscending     = InvalidError("bitmap indexes must be strictly increasing")
	BitmapIndexOutOfRange       = InvalidError("bitmap index is out of range")
	BitmapLength                = InvalidError("bitmap length is invalid")
	CannotDecodeAddress         = InvalidError("cannot decode address")
	CannotDecodePrivateKey      = InvalidError("cannot decode private key")
	CannotDecodeSignature       = InvalidError("cannot decode signature")
	DerivationPathNotHardened   = InvalidError("derivation path components must be hardened")
	EmptyKeyList                = InvalidError("key list is empty")
	EmptySignerList             = InvalidError("signer list is empty")
	IdentityCommitmentLength    = InvalidError("identity commitment length is invalid")
	InvalidDerivationPath       = InvalidError("derivation path is invalid")
	InvalidMnemonic             = InvalidError("mnemonic phrase is invalid")
	InvalidSignature            = InvalidError("invalid signature")
	KeylessCannotVerify         = InvalidError("keyless public key cannot verify signatures")
	ModuleBundleRetired         = InvalidError("module bundle payload is retired")
	PrivateKeyLength            = InvalidError("private key length is invalid")
	PublicKeyLength             = InvalidError("public key length is invalid")
	SignatureLength             = InvalidError("signature length is invalid")
	SignerCountExceedsThreshold = InvalidError("signer count exceeds threshold")
	ThresholdOutOfRange         = InvalidError("threshold is out of range")
	TooManyKeys                 = InvalidError("too many keys for one bitmap")
	U128Length                  = InvalidError("u128 little-endian block length is invalid")
	U256Length                  = InvalidError("u256 little-endian block is too long")
)

// InvalidError - closed variant sets - keep in alphabetic order
var (
	UnsupportedArgumentVariant      = InvalidError("transaction argument variant is not supported")
	UnsupportedAuthenticatorVariant = InvalidError("authenticator variant is not supported")
	UnsupportedExecutableVariant    = InvalidError("executable variant is not supported")
	UnsupportedExtraConfigVariant   = InvalidError("extra config variant is not supported")
	UnsupportedKeyVariant           = InvalidError("public key variant is not supported")
	UnsupportedPayloadVariant       = InvalidError("payload variant is not supported")
	UnsupportedRawVariant           = InvalidError("raw transaction variant is not supported")
	UnsupportedSignatureVariant     = InvalidError("signature variant is not supported")
	UnsupportedTypeTagVariant       = InvalidError("type tag variant is not supported")
)

// NotFoundError - keep in alphabetic order
var (
	SignerKeyNotFound = NotFoundError("signer public key is not in the key set")
)

// ProcessError - decode and boundary failures - keep in alphabetic order
var (
	BoolOutOfRange    = ProcessError("bool byte is not 0 or 1")
	BufferTooShort    = ProcessError("buffer is too short")
	ExcessBytes       = ProcessError("excess bytes after decode")
	FaucetRequestFail = ProcessError("faucet request failed")
	JsonParseFail     = ProcessError("parse to json failed")
	NodeRequestFail   = ProcessError("node request failed")
	SubmitRequestFail = ProcessError("submit transaction failed")
	UlebNotCanonical  = ProcessError("uleb128 encoding is not canonical")
	UlebOverflow      = ProcessError("uleb128 value overflows the target width")
	UlebTruncated     = ProcessError("uleb128 encoding is truncated")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
