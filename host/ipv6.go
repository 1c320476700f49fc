package host

import (
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
)

// parseIPv6 parses the content between "[" and "]" into eight 16-bit pieces.
// It supports "::" compression at most once and an embedded IPv4 tail
// occupying the last two pieces.
func parseIPv6(input string) (pieces [8]uint16, err error) {
	pieceIndex := 0
	compress := -1

	runes := []rune(input)
	pointer := 0

	if len(runes) > 0 && runes[0] == ':' {
		if len(runes) < 2 || runes[1] != ':' {
			err = errors.New(errors.IPv6DoesNotStartWithDoubleColon)

			return
		}

		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for pointer < len(runes) {
		if pieceIndex == 8 {
			err = errors.New(errors.IPv6InvalidPiece)

			return
		}

		if runes[pointer] == ':' {
			if compress >= 0 {
				err = errors.New(errors.IPv6CompressExpected)

				return
			}

			pointer++
			pieceIndex++
			compress = pieceIndex

			continue
		}

		value := 0
		length := 0

		for pointer < len(runes) && length < 4 && unicodes.ASCIIHexDigit.Test(uint(runes[pointer])) {
			value = value*0x10 + hexValue(byte(runes[pointer]))

			pointer++
			length++
		}

		if pointer < len(runes) && runes[pointer] == '.' {
			if length == 0 {
				err = errors.New(errors.IPv6EmptyIPv4Segment)

				return
			}

			pointer -= length

			if pieceIndex > 6 {
				err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

				return
			}

			numbersSeen := 0

			for pointer < len(runes) {
				ipv4Piece := -1

				if numbersSeen > 0 {
					if runes[pointer] != '.' || numbersSeen >= 4 {
						err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

						return
					}

					pointer++
				}

				if pointer >= len(runes) || !unicodes.ASCIIDigit.Test(uint(runes[pointer])) {
					err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

					return
				}

				for pointer < len(runes) && unicodes.ASCIIDigit.Test(uint(runes[pointer])) {
					digit := int(runes[pointer] - '0')

					switch {
					case ipv4Piece < 0:
						ipv4Piece = digit
					case ipv4Piece == 0:
						err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

						return
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}

					if ipv4Piece > 255 {
						err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

						return
					}

					pointer++
				}

				pieces[pieceIndex] = pieces[pieceIndex]*0x100 + uint16(ipv4Piece)

				numbersSeen++

				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				err = errors.New(errors.IPv6InvalidIPv4SegmentNumber)

				return
			}

			break
		} else if pointer < len(runes) && runes[pointer] == ':' {
			pointer++

			if pointer == len(runes) {
				err = errors.New(errors.IPv6InvalidPiece)

				return
			}
		} else if pointer < len(runes) {
			err = errors.New(errors.IPv6InvalidPiece)

			return
		}

		pieces[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress >= 0 {
		swaps := pieceIndex - compress

		pieceIndex = 7

		for pieceIndex != 0 && swaps > 0 {
			pieces[pieceIndex], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[pieceIndex]

			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		err = errors.New(errors.IPv6CompressExpected)

		return
	}

	return
}

// serializeIPv6 renders the pieces in the shortest canonical form: lowercase
// hex, no leading zeros, and the longest run of two or more zero pieces
// compressed to "::". Ties go to the earliest run.
func serializeIPv6(pieces [8]uint16) (serialized string) {
	compress := -1
	compressLength := 0

	for i := 0; i < 8; {
		if pieces[i] != 0 {
			i++

			continue
		}

		length := 0

		for j := i; j < 8 && pieces[j] == 0; j++ {
			length++
		}

		if length > 1 && length > compressLength {
			compress = i
			compressLength = length
		}

		i += length
	}

	var builder strings.Builder

	ignore := false

	for i := 0; i < 8; i++ {
		if ignore && pieces[i] == 0 {
			continue
		}

		ignore = false

		if i == compress {
			if i == 0 {
				builder.WriteString("::")
			} else {
				builder.WriteString(":")
			}

			ignore = true

			continue
		}

		builder.WriteString(strconv.FormatUint(uint64(pieces[i]), 16))

		if i != 7 {
			builder.WriteString(":")
		}
	}

	serialized = builder.String()

	return
}

func hexValue(b byte) (value int) {
	switch {
	case b >= '0' && b <= '9':
		value = int(b - '0')
	case b >= 'A' && b <= 'F':
		value = int(b - 'A' + 10)
	default:
		value = int(b - 'a' + 10)
	}

	return
}
