// Package abi holds the arithmetic shared by the heap codecs: checked
// size math, alignment and float canonicalization.
//
// This package is internal to the transcoder.
package abi
