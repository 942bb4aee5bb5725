// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types. Fatal CLI errors are
// wrapped in an ActionableError that carries the failed operation, the
// resource involved, and concrete suggestions for fixing the problem.
package issue
