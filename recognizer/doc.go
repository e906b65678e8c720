// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recognizer talks to the external card-recognition service.

The service receives a compressed, base64-encoded photo and answers with
the rank labels of the cards it could identify ("A", "2" .. "10", "J",
"Q", "K"), duplicates included. The total score is derived locally:

	total = sum over cards of valueMap[card]   (unknown labels count 0)

The Recognizer interface exists so handlers can be tested against a stub
without a live service.
*/
package recognizer
