package ir

// Scalar coercions reproduce the historical accumulate-digits
// algorithms of the format, including their quirks: no overflow
// checking, -1 as the error sentinel, early stop at the first
// non-digit, and float fractions built by repeated division by 10.
// They are deliberately not strconv.ParseInt/ParseFloat.

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func strToInt(s string, ok bool) int64 {
	if !ok {
		return -1
	}
	i := 0
	negative := false
	if i < len(s) && s[i] == '-' {
		negative = true
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return -1
	}
	var result int64
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			break
		}
		result *= 10
		result += int64(s[i] - '0')
	}
	if negative {
		return -result
	}
	return result
}

func strToFloat(s string, ok bool) float64 {
	if !ok {
		return -1
	}
	i := 0
	negative := false
	if i < len(s) && s[i] == '-' {
		negative = true
		i++
	}
	if i >= len(s) || (!isDigit(s[i]) && s[i] != '.') {
		return -1
	}
	var result float64
	inDecimal := false
	decimalPlaces := 0
	for ; i < len(s); i++ {
		b := s[i]
		if !isDigit(b) && b != '.' {
			break
		}
		if b == '.' {
			if inDecimal {
				// a second dot ends the number
				break
			}
			inDecimal = true
			continue
		}
		if inDecimal {
			decimalPlaces++
		}
		result *= 10
		result += float64(b - '0')
	}
	for ; decimalPlaces > 0; decimalPlaces-- {
		result /= 10
	}
	if negative {
		return -result
	}
	return result
}
