package host

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
)

// parseIPv4 attempts to interpret an ASCII domain as an IPv4 address written
// as one to four dot-separated numbers in decimal, octal, or hexadecimal.
//
// Three outcomes are possible: a parsed address, "this is not an IPv4
// address" (the caller keeps the domain), and a hard overflow failure.
//
// Parameters:
//   - input (string): The candidate, already percent-decoded and through
//     IDNA.
//   - sink (func(errors.Code)): Optional receiver for validation errors.
//
// Returns:
//   - address (uint32): The parsed address, meaningful only when isIPv4.
//   - isIPv4 (bool): false when the input should be treated as a domain.
//   - err (error): An overflow failure; isIPv4 is irrelevant when set.
func parseIPv4(input string, sink func(code errors.Code)) (address uint32, isIPv4 bool, err error) {
	parts := strings.Split(input, ".")

	if len(parts) >= 2 && parts[len(parts)-1] == "" {
		report(sink, errors.IPv4NumberOutOfRange)

		parts = parts[:len(parts)-1]
	}

	if len(parts) > 4 {
		return
	}

	numbers := make([]uint64, 0, len(parts))

	for _, part := range parts {
		number, ok, overflow := parseIPv4Number(part)
		if overflow {
			err = errors.New(errors.IPv4Overflow)

			return
		}

		if !ok {
			return
		}

		numbers = append(numbers, number)
	}

	for _, number := range numbers[:len(numbers)-1] {
		if number > 255 {
			err = errors.New(errors.IPv4Overflow)

			return
		}
	}

	last := numbers[len(numbers)-1]

	if last >= uint64(1)<<(8*(5-len(numbers))) {
		err = errors.New(errors.IPv4Overflow)

		return
	}

	for _, number := range numbers {
		if number > 255 {
			report(sink, errors.IPv4NumberOutOfRange)

			break
		}
	}

	address = uint32(last)

	for i, number := range numbers[:len(numbers)-1] {
		address |= uint32(number) << (8 * (3 - i))
	}

	isIPv4 = true

	return
}

// parseIPv4Number parses a single dotted part. A "0x"/"0X" prefix selects
// base 16, a remaining leading "0" selects base 8, anything else is decimal.
// An empty string is zero. A value too large even for 64 bits is reported as
// overflow rather than a syntax failure, matching the standard's
// arbitrary-precision arithmetic.
func parseIPv4Number(input string) (number uint64, ok, overflow bool) {
	base := 10

	switch {
	case len(input) >= 2 && (strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X")):
		input = input[2:]
		base = 16
	case len(input) >= 2 && input[0] == '0':
		input = input[1:]
		base = 8
	}

	if input == "" {
		ok = true

		return
	}

	number, err := strconv.ParseUint(input, base, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			overflow = true
		}

		return
	}

	ok = true

	return
}

// serializeIPv4 renders the address in dotted-quad form.
func serializeIPv4(address uint32) (serialized string) {
	octets := make([]string, 4)

	for i := 3; i >= 0; i-- {
		octets[i] = strconv.FormatUint(uint64(address&0xff), 10)

		address >>= 8
	}

	serialized = strings.Join(octets, ".")

	return
}

// report forwards a validation error to the sink when one is configured.
func report(sink func(code errors.Code), code errors.Code) {
	if sink != nil {
		sink(code)
	}
}
