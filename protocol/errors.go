// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

// InvocationError is the closed set of failures a program invocation reports
// back to the host. Every failure is terminal for the invocation and never
// accompanied by a state mutation. Call sites add context with errors.Wrapf;
// check for a specific kind with errors.Cause.
type InvocationError string

func (e InvocationError) Error() string {
	return string(e)
}

const (
	ErrMalformedInstruction InvocationError = "malformed instruction"
	ErrUnsupportedOperation InvocationError = "unsupported operation"
	ErrAccessDenied         InvocationError = "access denied"
	ErrPermissionDenied     InvocationError = "record is not writable"
	ErrAlreadyInitialized   InvocationError = "record already initialized"
	ErrBufferTooSmall       InvocationError = "record buffer too small"
	ErrMissingRecord        InvocationError = "missing record handle"
)
