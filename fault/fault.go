// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RejectedError GenericError

// program and assembler errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCapacityOverflow        = InvalidError("capacity overflow")
	ErrCellDepNotFound         = NotFoundError("cell dep not found")
	ErrCellNotFound            = NotFoundError("expected cell not found")
	ErrCertificateCellNotFound = NotFoundError("certificate cell not found")
	ErrClusterCellNotFound     = NotFoundError("cluster cell not found")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrDeadCell                = InvalidError("cell is dead or unknown")
	ErrDeploymentNotFound      = NotFoundError("deployment not found for network")
	ErrDuplicateInput          = ExistsError("duplicate input")
	ErrEmptyInputs             = InvalidError("transaction has no inputs")
	ErrExceededMaximumCycles   = ProcessError("exceeded maximum cycles")
	ErrHeaderDepConflict       = InvalidError("header dep slot holds a different header")
	ErrHeaderNotFound          = NotFoundError("header not found")
	ErrIndexOutOfBound         = InvalidError("index out of bound")
	ErrIndexOutOfRange         = InvalidError("index out of range")
	ErrInsufficientCapacity    = InvalidError("insufficient capacity")
	ErrInvalidCellData         = InvalidError("cell data malformed")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidDepType          = InvalidError("invalid dep type")
	ErrInvalidHashType         = InvalidError("invalid hash type")
	ErrInvalidHexString        = InvalidError("invalid hex string")
	ErrInvalidIpAddress        = InvalidError("invalid IP address")
	ErrInvalidLength           = InvalidError("invalid length")
	ErrInvalidLoggerChannel    = ProcessError("invalid logger channel")
	ErrInvalidNetwork          = InvalidError("invalid network")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrItemMissing             = NotFoundError("item missing")
	ErrLockProxyCellNotFound   = NotFoundError("lock proxy cell not found")
	ErrMissingLedger           = ProcessError("missing ledger")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrMissingVerifier         = ProcessError("missing verifier")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotMoleculeData         = InvalidError("not molecule data")
	ErrNotOwner                = InvalidError("cell is not owned by the depositer")
	ErrNotSimulated            = InvalidError("only available on a simulated network")
	ErrOutputCapacityTooSmall  = InvalidError("output capacity is less than occupied capacity")
	ErrRateLimiting            = InvalidError("rate limiting")
	ErrScriptNotFound          = NotFoundError("script code not found")
	ErrSporeCellNotFound       = NotFoundError("spore cell not found")
	ErrTransactionNotFound     = NotFoundError("transaction not found")
	ErrTypeBurnCellNotFound    = NotFoundError("type burn cell not found")
	ErrTypeScriptMissing       = InvalidError("cell has no type script")
)

// on-chain rejections - keep in declaration order of each predicate
var (
	// certificate type
	ErrUnknownPattern               = RejectedError("unknown lifecycle pattern")
	ErrUnexpectedTypeId             = RejectedError("type id mismatch")
	ErrDaoCellNotFound              = RejectedError("deposit cell not found")
	ErrInvalidCertificateDataFormat = RejectedError("malformed certificate data")
	ErrDaoCapacityNotMatch          = RejectedError("deposit capacity mismatch")
	ErrUnsupportedDoubleMint        = RejectedError("double mint attempt")
	ErrDaoCellNotLocked             = RejectedError("deposit cell not properly chained")
	ErrSporeNotFound                = RejectedError("collectible not found")
	ErrSporeCellNotLocked           = RejectedError("collectible not properly chained")
	ErrInvalidSporeData             = RejectedError("malformed collectible data")
	ErrUnexpectedSporeDataFormat    = RejectedError("collectible content mismatch")

	// certificate check lock
	ErrNoDaoCertificateFound = RejectedError("no certificate present")

	// supporting predicates
	ErrInvalidTypeBurnArgs    = RejectedError("type burn args must be a 32 byte hash")
	ErrTypeBurnTargetNotFound = RejectedError("type burn target not consumed")
	ErrInvalidLockProxyArgs   = RejectedError("lock proxy args must be a 32 byte hash")
	ErrLockProxyOwnerNotFound = RejectedError("lock proxy owner not present in inputs")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RejectedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRejected(e error) bool { _, ok := e.(RejectedError); return ok }
