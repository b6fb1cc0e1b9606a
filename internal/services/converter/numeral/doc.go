// Package numeral converts between integers in [0, 3999] and Roman numerals.
//
// Decoding validates the classical grammar in a single left-to-right pass:
// repeatable symbols (M, C, X, I) run at most three times, single-use symbols
// (L, V, D) appear at most once, values never ascend except through one
// canonical subtractive pair (IV, IX, XL, XC, CD, CM). Encoding is greedy over
// the same symbol table, so every encoded numeral decodes back to its input.
//
// Zero is written as the sentinel "nulla". Failures are *errors.Error values
// carrying a NUMERAL_* code; compare them with errors.Is against the exported
// Err sentinels.
package numeral
