package dertlv

/*
utctime.go implements the UTCTime decoder, grounded on time.go's
calendrical checks for the leap-year rule and two-digit year
windowing, but replacing its time.Parse-based approach with a direct
digit-pair reader plus a from-scratch days-since-epoch accumulator,
since this package takes no dependency on the time package (no I/O or
hidden allocation in the decode path).
*/

func daysInUTCMonth(month int, leap bool) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if leap {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isUTCLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// daysSinceEpoch returns the number of days between 1970-01-01 and
// January 1 of year y. UTCTime's two-digit year window (1950-2049)
// keeps this loop small and allocation-free.
func daysSinceEpoch(y int) int {
	days := 0
	if y >= 1970 {
		for yy := 1970; yy < y; yy++ {
			if isUTCLeapYear(yy) {
				days += 366
			} else {
				days += 365
			}
		}
	} else {
		for yy := y; yy < 1970; yy++ {
			if isUTCLeapYear(yy) {
				days -= 366
			} else {
				days -= 365
			}
		}
	}
	return days
}

func utcTimeToUnix(year, month, day, hour, minute, second int) int64 {
	days := daysSinceEpoch(year)
	leap := isUTCLeapYear(year)
	for m := 1; m < month; m++ {
		days += daysInUTCMonth(m, leap)
	}
	days += day - 1
	return int64(days)*86400 + int64(hour)*3600 + int64(minute)*60 + int64(second)
}

func readDigitPair(data []byte, pos int) (int, bool) {
	if pos+1 >= len(data) {
		return 0, false
	}
	d0, d1 := data[pos], data[pos+1]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
		return 0, false
	}
	return int(d0-'0')*10 + int(d1-'0'), true
}

// DecodeUTCTime decodes tok's content as an ASN.1 UTCTime with the
// grammar YYMMDDHHMM[SS]Z, returning the POSIX timestamp of the
// instant it names. Two-digit years 00-49 map to 2000-2049 and 50-99
// map to 1950-1999. Every field is range-checked, including the day
// of month against the Gregorian leap-year rule for the decoded year.
func DecodeUTCTime(tok Token) (int64, error) {
	if tok.Class != ClassUniversal || tok.Tag != TagUTCTime {
		return 0, newError(KindInvalid, "not a UTCTime token")
	}

	data := tok.Content
	if len(data) < 11 {
		return 0, newError(KindInvalid, "UTCTime content too short")
	}

	year2, ok := readDigitPair(data, 0)
	if !ok {
		return 0, newError(KindInvalid, "invalid UTCTime year")
	}
	month, ok := readDigitPair(data, 2)
	if !ok {
		return 0, newError(KindInvalid, "invalid UTCTime month")
	}
	day, ok := readDigitPair(data, 4)
	if !ok {
		return 0, newError(KindInvalid, "invalid UTCTime day")
	}
	hour, ok := readDigitPair(data, 6)
	if !ok {
		return 0, newError(KindInvalid, "invalid UTCTime hour")
	}
	minute, ok := readDigitPair(data, 8)
	if !ok {
		return 0, newError(KindInvalid, "invalid UTCTime minute")
	}

	pos := 10
	second := 0
	if pos >= len(data) {
		return 0, newError(KindInvalid, "truncated UTCTime")
	}
	if data[pos] != 'Z' {
		second, ok = readDigitPair(data, pos)
		if !ok {
			return 0, newError(KindInvalid, "invalid UTCTime seconds")
		}
		pos += 2
		if pos >= len(data) || data[pos] != 'Z' {
			return 0, newError(KindInvalid, "UTCTime must terminate with Z")
		}
	}
	if pos != len(data)-1 {
		return 0, newError(KindInvalid, "unexpected trailing bytes in UTCTime")
	}

	var year int
	if year2 <= 49 {
		year = 2000 + year2
	} else {
		year = 1900 + year2
	}

	if month < 1 || month > 12 {
		return 0, newError(KindInvalid, "UTCTime month out of range")
	}
	leap := isUTCLeapYear(year)
	if maxDay := daysInUTCMonth(month, leap); day < 1 || day > maxDay {
		return 0, newError(KindInvalid, "UTCTime day out of range")
	}
	if hour > 23 {
		return 0, newError(KindInvalid, "UTCTime hour out of range")
	}
	if minute > 59 {
		return 0, newError(KindInvalid, "UTCTime minute out of range")
	}
	if second > 59 {
		return 0, newError(KindInvalid, "UTCTime second out of range")
	}

	return utcTimeToUnix(year, month, day, hour, minute, second), nil
}
