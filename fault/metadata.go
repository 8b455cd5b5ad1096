// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// MetadataError - the program's own failure reasons, reported to the
// host through the custom error channel
//
// values are assigned by declaration order and must never be reordered
type MetadataError uint32

// metadata errors - keep in declaration order
const (
	InstructionUnpackError MetadataError = iota
	InstructionPackError
	NotRentExempt
	AlreadyInitialized
	Uninitialized
	InvalidMetadataKey
	InvalidEditionKey
	UpdateAuthorityIncorrect
	UpdateAuthorityIsNotSigner
	NotMintAuthority
	InvalidMintAuthority
	NameTooLong
	SymbolTooLong
	UriTooLong
	UpdateAuthorityMustBeEqualToMetadataAuthorityAndSigner
	MintMismatch
	EditionsMustHaveExactlyOneToken
	MaxEditionsMintedAlready
	TokenMintToFailed
	MasterRecordMismatch
	DestinationMintMismatch
	EditionAlreadyMinted
	PrintingMintDecimalsShouldBeZero
	OneTimePrintingAuthorizationMintDecimalsShouldBeZero
	EditionMintDecimalsShouldBeZero
	TokenBurnFailed
	TokenAccountOneTimeAuthMintMismatch
	DerivedKeyInvalid
	PrintingMintMismatch
	OneTimePrintingAuthMintMismatch
	TokenAccountMintMismatch
	TokenAccountMintMismatchV2
	NotEnoughTokens
	PrintingMintAuthorizationAccountMismatch
	AuthorizationTokenAccountOwnerMismatch
	Disabled
	CreatorsTooLong
	CreatorsMustBeAtleastOne
	MustBeOneOfCreators
	NoCreatorsPresentOnMetadata
	CreatorNotFound
	InvalidBasisPoints
	PrimarySaleCanOnlyBeFlippedToTrue
	OwnerMismatch
	NoBalanceInAccountForAuthorization
	ShareTotalMustBe100
	ReservationExists
	ReservationDoesNotExist
	ReservationNotSet
	ReservationAlreadyMade
	BeyondMaxAddressSize
	NumericalOverflowError
	ReservationBreachesMaximumSupply
	AddressNotInReservation
	CannotVerifyAnotherCreator
	CannotUnverifyAnotherCreator
	SpotMismatch
	IncorrectOwner
	PrintingWouldBreachMaximumSupply
	DataIsImmutable
	DuplicateCreatorAddress
	ReservationSpotsRemainingShouldMatchTotalSpotsAtStart
	InvalidTokenProgram
	DataTypeMismatch
	BeyondAlottedAddressSize
	ReservationNotComplete
	TriedToReplaceAnExistingReservation
	InvalidOperation
	InvalidOwner
	PrintingMintSupplyMustBeZeroForConversion
	OneTimeAuthMintSupplyMustBeZeroForConversion
	InvalidEditionIndex
	ReservationArrayShouldBeSizeOne
	IsMutableCanOnlyBeFlippedToFalse
	CollectionCannotBeVerifiedInThisInstruction
	Removed
	MustBeBurned
	InvalidUseMethod
	CannotChangeUseMethodAfterFirstUse
	CannotChangeUsesAfterFirstUse
	CollectionNotFound
	InvalidCollectionUpdateAuthority
	CollectionMustBeAUniqueMasterEdition
	UseAuthorityRecordAlreadyExists
	UseAuthorityRecordAlreadyRevoked
	Unusable
	NotEnoughUses
	InvalidUseAuthorityRecord
	InvalidCollectionAuthorityRecord
	InvalidFreezeAuthority
	InvalidDelegate
	CannotAdjustVerifiedCreator
	CannotRemoveVerifiedCreator
	CannotWipeVerifiedCreators
	NotAllowedToChangeSellerFeeBasisPoints
	EditionOverrideCannotBeZero
	InvalidUser
	RevokeCollectionAuthoritySignerIncorrect
	TokenCloseFailed
	UnsizedCollection
	SizedCollection
	MissingCollectionMetadata
	NotAMemberOfCollection
	NotVerifiedMemberOfCollection
	NotACollectionParent
	CouldNotDetermineTokenStandard
	MissingEditionAccount
	NotAMasterEdition
	MasterEditionHasPrints
	BorshDeserializationError
	CannotUpdateVerifiedCollection
	CollectionMasterEditionAccountInvalid
	AlreadyVerified
	AlreadyUnverified
	NotAPrintEdition
	InvalidMasterEdition
	InvalidPrintEdition
	InvalidEditionMarker
	ReservationListDeprecated
	PrintEditionDoesNotMatchMasterEdition
	EditionNumberGreaterThanMaxSupply
	MustUnverify
	InvalidEscrowBumpSeed
	MustBeEscrowAuthority
	InvalidSystemProgram
	MustBeNonFungible
	InsufficientTokens
	BorshSerializationError
	NoFreezeAuthoritySet
	InvalidCollectionSizeChange
	InvalidBubblegumSigner
	EscrowParentHasDelegate
	MintIsNotSigner
	InvalidTokenStandard
	InvalidMintForTokenStandard
	InvalidAuthorizationRules
	MissingAuthorizationRules
	MissingProgrammableConfig
	InvalidProgrammableConfig
	DelegateAlreadyExists
	DelegateNotFound
	MissingAccountInBuilder
	MissingArgumentInBuilder
	FeatureNotSupported
	InvalidSystemWallet
	OnlySaleDelegateCanTransfer
	MissingTokenAccount
	MissingSplTokenProgram
	MissingAuthorizationRulesProgram
	InvalidDelegateRoleForTransfer
	InvalidTransferAuthority
	InstructionNotSupported
	KeyMismatch
	LockedToken
	UnlockedToken
	MissingDelegateRole
	InvalidAuthorityType
	MissingTokenRecord
	MintSupplyMustBeZero
	DataIsEmptyOrZeroed
	MissingTokenOwnerAccount
	InvalidMasterEditionAccountLength
	IncorrectTokenState
	InvalidDelegateRole
	MissingPrintSupply
	MissingMasterEditionAccount
	AmountMustBeGreaterThanZero
	InvalidDelegateArgs
	MissingLockedTransferAddress
	InvalidLockedTransferAddress
	DataIncrementLimitExceeded
	CannotUpdateAssetWithDelegate
	InvalidAmount
	MissingMasterEditionMintAccount
	MissingMasterEditionTokenAccount
	MissingEditionMarkerAccount
	CannotBurnWithDelegate
	MissingEdition
	InvalidAssociatedTokenAccountProgram
	InvalidInstructionsSysvar
	InvalidParentAccounts
	InvalidUpdateArgs
	InsufficientTokenBalance
	MissingCollectionMint
	MissingCollectionMasterEdition
	InvalidTokenRecord
	InvalidCloseAuthority
	InvalidInstruction
	MissingDelegateRecord
	InvalidFeeAccount
	InvalidMetadataFlags
	CannotChangeUpdateAuthorityWithDelegate
	InvalidMintExtensionType
	InvalidMintCloseAuthority
	InvalidMetadataPointer
	InvalidTokenExtensionType
	MissingImmutableOwnerExtension
	ExpectedUninitializedAccount
	InvalidEditionAccountLength
	AccountAlreadyResized
	ConditionsForClosingNotMet
)

var metadataErrorText = [...]string{
	InstructionUnpackError:                                 "failed to unpack instruction data",
	InstructionPackError:                                   "failed to pack instruction data",
	NotRentExempt:                                          "lamport balance below rent-exempt threshold",
	AlreadyInitialized:                                     "already initialized",
	Uninitialized:                                          "uninitialized",
	InvalidMetadataKey:                                     "metadata's key must match seed of ['metadata', program id, mint] provided",
	InvalidEditionKey:                                      "edition's key must match seed of ['metadata', program id, name, 'edition'] provided",
	UpdateAuthorityIncorrect:                               "update Authority given does not match",
	UpdateAuthorityIsNotSigner:                             "update Authority needs to be signer to update metadata",
	NotMintAuthority:                                       "you must be the mint authority and signer on this transaction",
	InvalidMintAuthority:                                   "mint authority provided does not match the authority on the mint",
	NameTooLong:                                            "name too long",
	SymbolTooLong:                                          "symbol too long",
	UriTooLong:                                             "URI too long",
	UpdateAuthorityMustBeEqualToMetadataAuthorityAndSigner: "update authority must be equivalent to the metadata's authority and also signer of this transaction",
	MintMismatch:                                           "mint given does not match mint on Metadata",
	EditionsMustHaveExactlyOneToken:                        "editions must have exactly one token",
	MaxEditionsMintedAlready:                               "maximum editions printed already",
	TokenMintToFailed:                                      "token mint to failed",
	MasterRecordMismatch:                                   "the master edition record passed must match the master record on the edition given",
	DestinationMintMismatch:                                "the destination account does not have the right mint",
	EditionAlreadyMinted:                                   "an edition can only mint one of its kind!",
	PrintingMintDecimalsShouldBeZero:                       "printing mint decimals should be zero",
	OneTimePrintingAuthorizationMintDecimalsShouldBeZero:   "oneTimePrintingAuthorizationMint mint decimals should be zero",
	EditionMintDecimalsShouldBeZero:                        "edition mint decimals should be zero",
	TokenBurnFailed:                                        "token burn failed",
	TokenAccountOneTimeAuthMintMismatch:                    "the One Time authorization mint does not match that on the token account!",
	DerivedKeyInvalid:                                      "derived key invalid",
	PrintingMintMismatch:                                   "the Printing mint does not match that on the master edition!",
	OneTimePrintingAuthMintMismatch:                        "the  One Time Printing Auth mint does not match that on the master edition!",
	TokenAccountMintMismatch:                               "the mint of the token account does not match the Printing mint!",
	TokenAccountMintMismatchV2:                             "the mint of the token account does not match the master metadata mint!",
	NotEnoughTokens:                                        "not enough tokens to mint a limited edition",
	PrintingMintAuthorizationAccountMismatch:               "the mint on your authorization token holding account does not match your Printing mint!",
	AuthorizationTokenAccountOwnerMismatch:                 "the authorization token account has a different owner than the update authority for the master edition!",
	Disabled:                                               "this feature is currently disabled",
	CreatorsTooLong:                                        "creators list too long",
	CreatorsMustBeAtleastOne:                               "creators must be at least one if set",
	MustBeOneOfCreators:                                    "if using a creators array, you must be one of the creators listed",
	NoCreatorsPresentOnMetadata:                            "this metadata does not have creators",
	CreatorNotFound:                                        "this creator address was not found",
	InvalidBasisPoints:                                     "basis points cannot be more than 10000",
	PrimarySaleCanOnlyBeFlippedToTrue:                      "primary sale can only be flipped to true and is immutable",
	OwnerMismatch:                                          "owner does not match that on the account given",
	NoBalanceInAccountForAuthorization:                     "this account has no tokens to be used for authorization",
	ShareTotalMustBe100:                                    "share total must equal 100 for creator array",
	ReservationExists:                                      "this reservation list already exists!",
	ReservationDoesNotExist:                                "this reservation list does not exist!",
	ReservationNotSet:                                      "this reservation list exists but was never set with reservations",
	ReservationAlreadyMade:                                 "this reservation list has already been set!",
	BeyondMaxAddressSize:                                   "provided more addresses than max allowed in single reservation",
	NumericalOverflowError:                                 "numericalOverflowError",
	ReservationBreachesMaximumSupply:                       "this reservation would go beyond the maximum supply of the master edition!",
	AddressNotInReservation:                                "address not in reservation!",
	CannotVerifyAnotherCreator:                             "you cannot unilaterally verify another creator, they must sign",
	CannotUnverifyAnotherCreator:                           "you cannot unilaterally unverify another creator",
	SpotMismatch:                                           "in initial reservation setting, spots remaining should equal total spots",
	IncorrectOwner:                                         "incorrect account owner",
	PrintingWouldBreachMaximumSupply:                       "printing these tokens would breach the maximum supply limit of the master edition",
	DataIsImmutable:                                        "data is immutable",
	DuplicateCreatorAddress:                                "no duplicate creator addresses",
	ReservationSpotsRemainingShouldMatchTotalSpotsAtStart:  "reservation spots remaining should match total spots when first being created",
	InvalidTokenProgram:                                    "invalid token program",
	DataTypeMismatch:                                       "data type mismatch",
	BeyondAlottedAddressSize:                               "beyond alotted address size in reservation!",
	ReservationNotComplete:                                 "the reservation has only been partially alotted",
	TriedToReplaceAnExistingReservation:                    "you cannot splice over an existing reservation!",
	InvalidOperation:                                       "invalid operation",
	InvalidOwner:                                           "invalid owner",
	PrintingMintSupplyMustBeZeroForConversion:              "printing mint supply must be zero for conversion",
	OneTimeAuthMintSupplyMustBeZeroForConversion:           "one Time Auth mint supply must be zero for conversion",
	InvalidEditionIndex:                                    "you tried to insert one edition too many into an edition mark pda",
	ReservationArrayShouldBeSizeOne:                        "in the legacy system the reservation needs to be of size one for cpu limit reasons",
	IsMutableCanOnlyBeFlippedToFalse:                       "is Mutable can only be flipped to false",
	CollectionCannotBeVerifiedInThisInstruction:            "collection cannot be verified in this instruction",
	Removed:                                                "removed",
	MustBeBurned:                                           "must be burned",
	InvalidUseMethod:                                       "invalid use method",
	CannotChangeUseMethodAfterFirstUse:                     "cannot change use method after first use",
	CannotChangeUsesAfterFirstUse:                          "cannot change uses after first use",
	CollectionNotFound:                                     "collection not found",
	InvalidCollectionUpdateAuthority:                       "invalid collection update authority",
	CollectionMustBeAUniqueMasterEdition:                   "collection must be a unique master edition",
	UseAuthorityRecordAlreadyExists:                        "use authority record already exists",
	UseAuthorityRecordAlreadyRevoked:                       "use authority record already revoked",
	Unusable:                                               "unusable",
	NotEnoughUses:                                          "not enough uses",
	InvalidUseAuthorityRecord:                              "invalid use authority record",
	InvalidCollectionAuthorityRecord:                       "invalid collection authority record",
	InvalidFreezeAuthority:                                 "invalid freeze authority",
	InvalidDelegate:                                        "invalid delegate",
	CannotAdjustVerifiedCreator:                            "cannot adjust verified creator",
	CannotRemoveVerifiedCreator:                            "cannot remove verified creator",
	CannotWipeVerifiedCreators:                             "cannot wipe verified creators",
	NotAllowedToChangeSellerFeeBasisPoints:                 "not allowed to change seller fee basis points",
	EditionOverrideCannotBeZero:                            "edition override cannot be zero",
	InvalidUser:                                            "invalid user",
	RevokeCollectionAuthoritySignerIncorrect:               "revoke Collection Authority signer is incorrect",
	TokenCloseFailed:                                       "token close failed",
	UnsizedCollection:                                      "calling v1.3 function on unsized collection",
	SizedCollection:                                        "calling v1.2 function on a sized collection",
	MissingCollectionMetadata:                              "missing collection metadata account",
	NotAMemberOfCollection:                                 "this NFT is not a member of the specified collection",
	NotVerifiedMemberOfCollection:                          "this NFT is not a verified member of the specified collection",
	NotACollectionParent:                                   "this NFT is not a collection parent NFT",
	CouldNotDetermineTokenStandard:                         "could not determine a TokenStandard type",
	MissingEditionAccount:                                  "missing edition account for a non-fungible token type",
	NotAMasterEdition:                                      "not a Master Edition",
	MasterEditionHasPrints:                                 "master Edition has prints",
	BorshDeserializationError:                              "borsh Deserialization Error",
	CannotUpdateVerifiedCollection:                         "cannot update a verified colleciton in this command",
	CollectionMasterEditionAccountInvalid:                  "edition Account Doesnt Match Collection",
	AlreadyVerified:                                        "item is already verified",
	AlreadyUnverified:                                      "item is already unverified",
	NotAPrintEdition:                                       "not a Print Edition",
	InvalidMasterEdition:                                   "invalid Edition Marker",
	InvalidPrintEdition:                                    "invalid Edition Marker",
	InvalidEditionMarker:                                   "invalid Edition Marker",
	ReservationListDeprecated:                              "reservation List is Deprecated",
	PrintEditionDoesNotMatchMasterEdition:                  "print Edition doesn't match Master Edition",
	EditionNumberGreaterThanMaxSupply:                      "edition Number greater than max supply",
	MustUnverify:                                           "must unverify before migrating collections",
	InvalidEscrowBumpSeed:                                  "invalid Escrow Account Bump Seed",
	MustBeEscrowAuthority:                                  "must be Escrow Authority",
	InvalidSystemProgram:                                   "invalid System Program",
	MustBeNonFungible:                                      "must be a Non Fungible Token",
	InsufficientTokens:                                     "insufficient tokens for transfer",
	BorshSerializationError:                                "borsh Serialization Error",
	NoFreezeAuthoritySet:                                   "cannot create NFT with no Freeze Authority",
	InvalidCollectionSizeChange:                            "invalid collection size change",
	InvalidBubblegumSigner:                                 "invalid bubblegum signer",
	EscrowParentHasDelegate:                                "escrow parent has delegate",
	MintIsNotSigner:                                        "mint is not signer",
	InvalidTokenStandard:                                   "invalid token standard",
	InvalidMintForTokenStandard:                            "invalid mint for token standard",
	InvalidAuthorizationRules:                              "invalid authorization rules",
	MissingAuthorizationRules:                              "missing authorization rules",
	MissingProgrammableConfig:                              "missing programmable config",
	InvalidProgrammableConfig:                              "invalid programmable config",
	DelegateAlreadyExists:                                  "delegate already exists",
	DelegateNotFound:                                       "delegate not found",
	MissingAccountInBuilder:                                "missing account in builder",
	MissingArgumentInBuilder:                               "missing argument in builder",
	FeatureNotSupported:                                    "feature not supported",
	InvalidSystemWallet:                                    "invalid system wallet",
	OnlySaleDelegateCanTransfer:                            "only sale delegate can transfer",
	MissingTokenAccount:                                    "missing token account",
	MissingSplTokenProgram:                                 "missing spl token program",
	MissingAuthorizationRulesProgram:                       "missing authorization rules program",
	InvalidDelegateRoleForTransfer:                         "invalid delegate role for transfer",
	InvalidTransferAuthority:                               "invalid transfer authority",
	InstructionNotSupported:                                "instruction not supported",
	KeyMismatch:                                            "key mismatch",
	LockedToken:                                            "locked token",
	UnlockedToken:                                          "unlocked token",
	MissingDelegateRole:                                    "missing delegate role",
	InvalidAuthorityType:                                   "invalid authority type",
	MissingTokenRecord:                                     "missing token record",
	MintSupplyMustBeZero:                                   "mint supply must be zero",
	DataIsEmptyOrZeroed:                                    "data is empty or zeroed",
	MissingTokenOwnerAccount:                               "missing token owner account",
	InvalidMasterEditionAccountLength:                      "invalid master edition account length",
	IncorrectTokenState:                                    "incorrect token state",
	InvalidDelegateRole:                                    "invalid delegate role",
	MissingPrintSupply:                                     "missing print supply",
	MissingMasterEditionAccount:                            "missing master edition account",
	AmountMustBeGreaterThanZero:                            "amount must be greater than zero",
	InvalidDelegateArgs:                                    "invalid delegate args",
	MissingLockedTransferAddress:                           "missing locked transfer address",
	InvalidLockedTransferAddress:                           "invalid locked transfer address",
	DataIncrementLimitExceeded:                             "data increment limit exceeded",
	CannotUpdateAssetWithDelegate:                          "cannot update asset with delegate",
	InvalidAmount:                                          "invalid amount",
	MissingMasterEditionMintAccount:                        "missing master edition mint account",
	MissingMasterEditionTokenAccount:                       "missing master edition token account",
	MissingEditionMarkerAccount:                            "missing edition marker account",
	CannotBurnWithDelegate:                                 "cannot burn with delegate",
	MissingEdition:                                         "missing edition",
	InvalidAssociatedTokenAccountProgram:                   "invalid associated token account program",
	InvalidInstructionsSysvar:                              "invalid instructions sysvar",
	InvalidParentAccounts:                                  "invalid parent accounts",
	InvalidUpdateArgs:                                      "invalid update args",
	InsufficientTokenBalance:                               "insufficient token balance",
	MissingCollectionMint:                                  "missing collection mint",
	MissingCollectionMasterEdition:                         "missing collection master edition",
	InvalidTokenRecord:                                     "invalid token record",
	InvalidCloseAuthority:                                  "invalid close authority",
	InvalidInstruction:                                     "invalid instruction",
	MissingDelegateRecord:                                  "missing delegate record",
	InvalidFeeAccount:                                      "invalid fee account",
	InvalidMetadataFlags:                                   "invalid metadata flags",
	CannotChangeUpdateAuthorityWithDelegate:                "cannot change update authority with delegate",
	InvalidMintExtensionType:                               "invalid mint extension type",
	InvalidMintCloseAuthority:                              "invalid mint close authority",
	InvalidMetadataPointer:                                 "invalid metadata pointer",
	InvalidTokenExtensionType:                              "invalid token extension type",
	MissingImmutableOwnerExtension:                         "missing immutable owner extension",
	ExpectedUninitializedAccount:                           "expected uninitialized account",
	InvalidEditionAccountLength:                            "invalid edition account length",
	AccountAlreadyResized:                                  "account already resized",
	ConditionsForClosingNotMet:                             "conditions for closing not met",
}

// Error - the error interface method
func (e MetadataError) Error() string {
	if int(e) < len(metadataErrorText) {
		return metadataErrorText[e]
	}
	return fmt.Sprintf("metadata error: %d", uint32(e))
}

// Code - the value the host sees for this error
func (e MetadataError) Code() uint64 {
	if 0 == e {
		return customZero
	}
	return uint64(e)
}

// IsValid - true if the value names a declared error
func (e MetadataError) IsValid() bool {
	return int(e) < len(metadataErrorText)
}

// IsErrMetadata - determine if an error is one of the program's own
func IsErrMetadata(e error) bool { _, ok := e.(MetadataError); return ok }
