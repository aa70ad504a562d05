package validator

import (
	"regexp"
	"unicode/utf8"
)

const vinLength = 17

var (
	vinCharsRegex        = regexp.MustCompile(`^[0-9A-HJ-NPR-Z]+$`)
	vinZerosRegex        = regexp.MustCompile(`0{7}`)
	vinOnesRegex         = regexp.MustCompile(`1{6}`)
	vinCheckableRegex    = regexp.MustCompile(`^.{8}[0-9X]`)
	vinNorthAmericaRegex = regexp.MustCompile(`^[1-5]`)

	vinTransliterations = map[byte]int{
		'A': 1, 'J': 1,
		'B': 2, 'K': 2, 'S': 2,
		'C': 3, 'L': 3, 'T': 3,
		'D': 4, 'M': 4, 'U': 4,
		'E': 5, 'N': 5, 'V': 5,
		'F': 6, 'W': 6,
		'G': 7, 'P': 7, 'X': 7,
		'H': 8, 'Y': 8,
		'R': 9, 'Z': 9,
	}
	// Position 9 holds the control number itself and carries no weight.
	vinWeights = []int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}
)

// VINConfig configures the vehicle identification number validator.
type VINConfig struct {
	// Strict enables verification of the control number at position 9.
	Strict bool `yaml:"strict" json:"strict"`
	// AllowLongSequences permits runs of seven zeros or six ones.
	AllowLongSequences bool `yaml:"allow_long_sequences" json:"allow_long_sequences"`
}

// DefaultVINConfig allows long sequences and skips control number verification.
func DefaultVINConfig() VINConfig {
	return VINConfig{AllowLongSequences: true}
}

// VIN validates 17 character vehicle identification numbers.
// Violations are reported fail-fast: only the first one is returned.
type VIN struct {
	strict             bool
	allowLongSequences bool
}

func NewVIN(cfg VINConfig) (*VIN, error) {
	return &VIN{strict: cfg.Strict, allowLongSequences: cfg.AllowLongSequences}, nil
}

func (n *VIN) Validate(v Value) Outcome {
	if !v.IsScalar() {
		return Invalid(KindVINInvalid, nil)
	}

	s := v.String()
	if utf8.RuneCountInString(s) != vinLength {
		return Invalid(KindVINInvalidLength, map[string]any{"length": vinLength})
	}
	if !vinCharsRegex.MatchString(s) {
		return Invalid(KindVINInvalidChars, nil)
	}
	if !n.allowLongSequences {
		if vinZerosRegex.MatchString(s) {
			return Invalid(KindVINInvalidConsecutiveZeros, nil)
		}
		if vinOnesRegex.MatchString(s) {
			return Invalid(KindVINInvalidConsecutiveOnes, nil)
		}
	}

	if !n.strict || !(vinCheckableRegex.MatchString(s) || vinNorthAmericaRegex.MatchString(s)) {
		return Valid()
	}

	cn, ok := vinControlNumber(s)
	if !ok {
		return Invalid(KindVINInvalidChars, nil)
	}
	if cn != s[8] {
		return Invalid(KindVINInvalidCn, map[string]any{"expected": string(cn)})
	}
	return Valid()
}

// vinControlNumber computes the expected character at position 9 of an
// ASCII, 17 character VIN.
func vinControlNumber(s string) (byte, bool) {
	digits := make([]int, vinLength)
	for i := range vinLength {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits[i] = int(c - '0')
		default:
			val, ok := vinTransliterations[c]
			if !ok {
				return 0, false
			}
			digits[i] = val
		}
	}
	return vinCheckChar(weightedSum(digits, vinWeights)), true
}
