/*
Package parole spells out numbers in Italian.
It accepts numbers as [decimal] values and produces cardinal, ordinal,
year and currency forms, following the rules of Italian numeral grammar.

# Features

  - Cardinal numbers with vowel elision and accenting: "ventuno", "centottanta", "ventitré"
  - Long-scale names up to "trilioni" (10^18)
  - Decimal fractions read digit by digit after "virgola"
  - Ordinal numbers, both spelled ("ventunesimo") and numeric ("21°")
  - Years, with "a.C." for years before the common era
  - Currency amounts with singular and plural agreement of currency and minor-unit names
  - Pure functions, safe for concurrent use by multiple goroutines

# Composition

Numbers are split into groups of three digits.
Hundreds, tens and units of a group, as well as the thousands group, are written
as a single compound word: 123456 is "centoventitremilaquattrocentocinquantasei".
Millions and above are separate words: 2000001 is "due milioni uno".

Three spelling rules apply inside a compound:

  - the final vowel of "cento" is dropped before "ottanta" (180 → centottanta);
  - the final vowel of the tens word is dropped before "uno" and "otto" (28 → ventotto);
  - "tre" after a tens word is accented (23 → ventitré), but the accent is dropped
    before "mila" (23000 → ventitremila).

# Currencies

The [Currency] type identifies the currencies that have Italian names.
Amounts are spelled with [CurrencyWords] or [Amount.Words].
The number "uno" is not shortened before currency names, so 1 EUR is spelled
"uno euro".

# Errors

All conversion failures wrap [ErrCannotConvert]:
numbers of 10^21 or more have no scale name, and ordinals are defined only
for non-negative integers.
Parsing of currencies and amounts returns errors as well.
No partial output is produced on failure.
*/
package parole
