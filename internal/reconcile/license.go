// SPDX-License-Identifier: MPL-2.0

package reconcile

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

const (
	// LicenseMIT generates a permissive MIT license.
	LicenseMIT LicenseKind = "mit"
	// LicenseProprietary generates an all-rights-reserved license.
	LicenseProprietary LicenseKind = "proprietary"
)

// ErrUnknownLicenseKind is the sentinel error wrapped by UnknownLicenseKindError.
var ErrUnknownLicenseKind = errors.New("unknown license kind")

type (
	// LicenseKind selects which license template to render.
	LicenseKind string

	// UnknownLicenseKindError is returned when a LicenseKind value is not recognized.
	UnknownLicenseKindError struct {
		Value LicenseKind
	}
)

// Error implements the error interface.
func (e *UnknownLicenseKindError) Error() string {
	return fmt.Sprintf("unknown license kind %q (accepted values: %s, %s)", e.Value, LicenseMIT, LicenseProprietary)
}

// Unwrap returns ErrUnknownLicenseKind so callers can use errors.Is for programmatic detection.
func (e *UnknownLicenseKindError) Unwrap() error { return ErrUnknownLicenseKind }

// IsValid returns whether the LicenseKind is recognized, and a list of
// validation errors if it is not.
func (k LicenseKind) IsValid() (bool, []error) {
	switch k {
	case LicenseMIT, LicenseProprietary:
		return true, nil
	default:
		return false, []error{&UnknownLicenseKindError{Value: k}}
	}
}

// String returns the string representation of the LicenseKind.
func (k LicenseKind) String() string { return string(k) }

// SPDX returns the SPDX identifier written into the project manifest when a
// license of this kind is generated.
func (k LicenseKind) SPDX() string {
	if k == LicenseProprietary {
		return "LicenseRef-Proprietary"
	}
	return "MIT"
}

var (
	mitTemplate = template.Must(template.New("mit").Parse(`MIT License

Copyright (c) {{.Year}} {{.Owner}}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`))

	proprietaryTemplate = template.Must(template.New("proprietary").Parse(`Copyright (c) {{.Year}} {{.Owner}}. All rights reserved.

This software and its source code are the proprietary and confidential
property of {{.Owner}}. No part of this software may be used, copied,
modified, distributed or disclosed in any form without the prior written
permission of {{.Owner}}.
`))
)

// RenderLicense renders the license text for kind with the given owner and
// calendar year substituted.
func RenderLicense(kind LicenseKind, owner string, year int) (string, error) {
	if ok, errs := kind.IsValid(); !ok {
		return "", errs[0]
	}
	if strings.TrimSpace(owner) == "" {
		return "", errors.New("license owner name is empty")
	}

	tmpl := mitTemplate
	if kind == LicenseProprietary {
		tmpl = proprietaryTemplate
	}

	var out strings.Builder
	data := struct {
		Owner string
		Year  int
	}{Owner: owner, Year: year}
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render %s license: %w", kind, err)
	}
	return out.String(), nil
}
