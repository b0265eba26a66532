// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides helpers for OpenAPI path templates and local
// $ref pointers.
//
// Path templates use the OpenAPI brace form (/users/{user_id}). Routers that
// use the colon form (/users/:user_id) or a trailing catch-all (/files/*path)
// are converted with [ToBraceTemplate].
//
// Local references are RFC 6901 JSON pointers prefixed with "#". [SplitPointer]
// returns the unescaped tokens and [ComponentName] the final token, which is the
// component name for refs such as "#/components/schemas/User".
package pathutil
