/*
Package emojis provides a read-only lookup table for Unicode emoji.

The table holds one record per fully-qualified emoji sequence, in Unicode
CLDR order, together with the CLDR short name, the introducing emoji
specification version, the CLDR group and the gemoji shortcodes. Lookup
works by exact Unicode sequence (any qualification form) or by shortcode:

	rocket := emojis.Lookup("🚀")
	rocket = emojis.LookupShortcode("rocket")

Skin-tone variants of a base emoji are linked into families and can be
enumerated or selected:

	wave := emojis.LookupShortcode("wave")
	dark := wave.WithSkinTone(emojis.Dark)

An approximate search over names and shortcodes is available with Search.

The table and both index maps are frozen after a one-time setup; all
operations afterwards are pure reads and safe for concurrent use from
multiple goroutines.

Data originates from the Unicode emoji-test.txt file and from the GitHub
gemoji database and is regenerated offline, see internal/generator.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emojis

import (
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator

// tracer writes to trace with key 'emojis'
func tracer() tracing.Trace {
	return tracing.Select("emojis")
}
