package validator

// weightedSum returns Σ digits[i]*weights[i] reduced modulo 11.
// A zero weight skips the position.
func weightedSum(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	return sum % 11
}

// decimalMod11 returns the decimal number spelled by s modulo 11.
// s must contain ASCII digits only. Since 10 ≡ -1 (mod 11), position k from the
// right carries weight 1 when k is even and 10 when k is odd.
func decimalMod11(s string) int {
	digits := make([]int, len(s))
	weights := make([]int, len(s))
	for i := range len(s) {
		digits[i] = int(s[i] - '0')
		if (len(s)-1-i)%2 == 0 {
			weights[i] = 1
		} else {
			weights[i] = 10
		}
	}
	return weightedSum(digits, weights)
}

// nationalCheckDigit maps a mod 11 remainder to the birth number check digit.
func nationalCheckDigit(mod int) int {
	if mod == 10 {
		return 0
	}
	return mod
}

// vinCheckChar maps a mod 11 remainder to the VIN control character.
func vinCheckChar(mod int) byte {
	if mod == 10 {
		return 'X'
	}
	return byte('0' + mod)
}
