/*
 * gobsdiff, a suffix-array-driven binary differencing engine.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errs defines the error taxonomy shared by every gobsdiff
// component and the CLI's exit-code mapping.
package errs

import (
	"github.com/pkg/errors"
)

// Kind classifies an error into one of the taxonomy buckets from the
// error handling design. It does not carry the message; Error still
// does that via the wrapped cause.
type Kind int

const (
	// KindNone is the zero value, never attached to a returned error.
	KindNone Kind = iota
	// KindUnknownFormat means no registered magic matched the input.
	KindUnknownFormat
	// KindFormatMismatch means the caller requested format X but the
	// patch stream is format Y.
	KindFormatMismatch
	// KindCorruptPatch means the magic was present but a structural
	// check on the patch stream failed afterwards.
	KindCorruptPatch
	// KindCorruptIndex means the index header, unit byte, or length
	// failed validation.
	KindCorruptIndex
	// KindIO wraps an underlying stream failure.
	KindIO
	// KindConfigError means an environment/flag value was invalid.
	KindConfigError
)

func (k Kind) String() string {
	switch k {
	case KindUnknownFormat:
		return "UnknownFormat"
	case KindFormatMismatch:
		return "FormatMismatch"
	case KindCorruptPatch:
		return "CorruptPatch"
	case KindCorruptIndex:
		return "CorruptIndex"
	case KindIO:
		return "Io"
	case KindConfigError:
		return "ConfigError"
	default:
		return "None"
	}
}

// kindedError attaches a Kind to a stack-carrying wrapped error.
type kindedError struct {
	kind  Kind
	cause error
}

func (e *kindedError) Error() string { return e.cause.Error() }
func (e *kindedError) Unwrap() error { return e.cause }

// New builds a new error of the given kind from a message, with a
// stack trace attached via github.com/pkg/errors.
func New(kind Kind, msg string) error {
	return &kindedError{kind: kind, cause: errors.New(msg)}
}

// Newf is New with fmt-style formatting.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &kindedError{kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap attaches a Kind and a message to an existing error, preserving
// its cause chain for errors.Is/As and for Cause(err).
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindedError{kind: kind, cause: errors.Wrap(err, msg)}
}

// KindOf recovers the taxonomy Kind attached to err, or KindNone if
// err was never tagged by this package.
func KindOf(err error) Kind {
	for err != nil {
		if ke, ok := err.(*kindedError); ok {
			return ke.kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return KindNone
}

// Cause returns the deepest wrapped error, matching github.com/pkg/errors
// semantics used across the rest of the tree.
func Cause(err error) error {
	for {
		if ke, ok := err.(*kindedError); ok {
			err = ke.cause
			continue
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return err
		}
		err = c.Cause()
	}
}
