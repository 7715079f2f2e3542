// Package identity validates national personal identity codes.
package identity

import (
	"errors"
	"strconv"
)

var (
	checksumWeightsFirst  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	checksumWeightsSecond = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// Estonian validates Estonian personal identity codes: 11 digits, a
// century/gender digit of 1-6, a plausible birth date and a two-stage
// mod-11 check digit.
type Estonian struct{}

func NewEstonian() Estonian {
	return Estonian{}
}

// Check runs a self-test against a known-good code. Used by the
// readiness probe.
func (v Estonian) Check() error {
	if !v.IsValid("35001012499") {
		return errors.New("identity validator self-test failed")
	}
	return nil
}

func (Estonian) IsValid(code string) bool {
	if len(code) != 11 {
		return false
	}
	digits := make([]int, 11)
	for i, r := range code {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	if digits[0] < 1 || digits[0] > 6 {
		return false
	}
	if !plausibleBirthDate(digits[0], code[1:7]) {
		return false
	}

	return digits[10] == checkDigit(digits)
}

func checkDigit(digits []int) int {
	sum := 0
	for i, w := range checksumWeightsFirst {
		sum += digits[i] * w
	}
	if rem := sum % 11; rem < 10 {
		return rem
	}

	sum = 0
	for i, w := range checksumWeightsSecond {
		sum += digits[i] * w
	}
	if rem := sum % 11; rem < 10 {
		return rem
	}
	return 0
}

func plausibleBirthDate(centuryDigit int, yymmdd string) bool {
	yy, _ := strconv.Atoi(yymmdd[0:2])
	mm, _ := strconv.Atoi(yymmdd[2:4])
	dd, _ := strconv.Atoi(yymmdd[4:6])

	if mm < 1 || mm > 12 {
		return false
	}

	year := 1800 + ((centuryDigit-1)/2)*100 + yy
	return dd >= 1 && dd <= daysInMonth(year, mm)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
