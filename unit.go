// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

// Unit is a type carrying no value (analogous to an explicit `void`
// type in C and C++).
//
// Use this type to construct [Func] instances that take no argument or
// return no value to the caller.
type Unit struct{}
