package zodiac

import (
	"fmt"
	"time"
)

// Sign is one of the 12 zodiac signs.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Signs lists all zodiac signs in calendar order starting from Aries.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// signRange marks the last day (month, day) a sign covers.
// Ranges follow the tropical zodiac table:
// Aries Mar 21 - Apr 19, Taurus Apr 20 - May 20, Gemini May 21 - Jun 20,
// Cancer Jun 21 - Jul 22, Leo Jul 23 - Aug 22, Virgo Aug 23 - Sep 22,
// Libra Sep 23 - Oct 22, Scorpio Oct 23 - Nov 21, Sagittarius Nov 22 - Dec 21,
// Capricorn Dec 22 - Jan 19, Aquarius Jan 20 - Feb 18, Pisces Feb 19 - Mar 20.
type signRange struct {
	month time.Month
	day   int
	sign  Sign
}

var boundaries = []signRange{
	{time.January, 19, Capricorn},
	{time.February, 18, Aquarius},
	{time.March, 20, Pisces},
	{time.April, 19, Aries},
	{time.May, 20, Taurus},
	{time.June, 20, Gemini},
	{time.July, 22, Cancer},
	{time.August, 22, Leo},
	{time.September, 22, Virgo},
	{time.October, 22, Libra},
	{time.November, 21, Scorpio},
	{time.December, 21, Sagittarius},
}

// FromDate resolves the zodiac sign for a birthdate. Every valid calendar
// date maps to exactly one sign, so there is no error case.
func FromDate(birthdate time.Time) Sign {
	month := birthdate.Month()
	day := birthdate.Day()

	for _, b := range boundaries {
		if month == b.month {
			if day <= b.day {
				return b.sign
			}
			// Past the boundary day: the next sign has started.
			return nextSign(b.sign)
		}
	}
	// Unreachable: boundaries covers all 12 months.
	return Capricorn
}

// ParseSign validates a string against the fixed 12-sign set.
func ParseSign(s string) (Sign, error) {
	for _, sign := range Signs {
		if string(sign) == s {
			return sign, nil
		}
	}
	return "", fmt.Errorf("invalid zodiac sign: %q", s)
}

// IsValid reports whether s is one of the 12 signs.
func IsValid(s string) bool {
	_, err := ParseSign(s)
	return err == nil
}

func nextSign(s Sign) Sign {
	for i, sign := range Signs {
		if sign == s {
			return Signs[(i+1)%len(Signs)]
		}
	}
	return s
}
