package teams

import (
	"image/color"
	"strings"
)

var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{A: 255}
	Yellow = color.RGBA{R: 255, G: 215, A: 255}
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var brandColors = map[string]color.RGBA{
	"ANA": rgb(252, 76, 2), "ARI": rgb(140, 38, 51), "UTA": rgb(100, 180, 240),
	"BOS": rgb(252, 181, 20), "BUF": rgb(0, 38, 84), "CGY": rgb(200, 16, 46),
	"CAR": rgb(206, 17, 38), "CHI": rgb(207, 10, 44), "COL": rgb(111, 38, 61),
	"CBJ": rgb(0, 38, 84), "DAL": rgb(0, 104, 71), "DET": rgb(206, 17, 38),
	"EDM": rgb(4, 30, 66), "FLA": rgb(200, 16, 46), "LAK": rgb(17, 17, 17),
	"MIN": rgb(2, 73, 48), "MTL": rgb(175, 30, 45), "NSH": rgb(255, 184, 28),
	"NJD": rgb(206, 17, 38), "NYI": rgb(0, 83, 155), "NYR": rgb(0, 56, 168),
	"OTT": rgb(200, 16, 46), "PHI": rgb(247, 73, 2), "PIT": rgb(252, 181, 20),
	"SEA": rgb(0, 22, 40), "SJS": rgb(0, 109, 117), "STL": rgb(0, 80, 255),
	"TBL": rgb(0, 40, 104), "TOR": rgb(0, 32, 91), "VAN": rgb(0, 32, 91),
	"VGK": rgb(185, 151, 91), "WSH": rgb(200, 16, 46), "WPG": rgb(0, 32, 91),
}

type confettiPair struct {
	primary, accent color.RGBA
}

var confettiColors = map[string]confettiPair{
	"NYR": {rgb(0, 56, 168), rgb(206, 17, 38)},
	"STL": {rgb(0, 80, 255), rgb(255, 215, 0)},
	"TOR": {rgb(0, 32, 91), rgb(255, 255, 255)},
	"TBL": {rgb(0, 40, 104), rgb(255, 255, 255)},
	"VAN": {rgb(0, 32, 91), rgb(0, 104, 71)},
	"SEA": {rgb(0, 22, 40), rgb(0, 109, 117)},
	"EDM": {rgb(4, 30, 66), rgb(252, 76, 2)},
	"BUF": {rgb(0, 38, 84), rgb(252, 181, 20)},
	"NSH": {rgb(255, 184, 28), rgb(0, 40, 104)},
	"VGK": {rgb(185, 151, 91), rgb(17, 17, 17)},
	"LAK": {rgb(17, 17, 17), rgb(255, 255, 255)},
}

var nicknames = map[string]string{
	"ANA": "DUCKS",
	"ARI": "COYOTES",
	"UTA": "MAMMOTH",
	"BOS": "BRUINS",
	"BUF": "SABRES",
	"CAR": "HURRICANES",
	"CBJ": "BLUE JACKETS",
	"CGY": "FLAMES",
	"CHI": "BLACKHAWKS",
	"COL": "AVALANCHE",
	"DAL": "STARS",
	"DET": "RED WINGS",
	"EDM": "OILERS",
	"FLA": "PANTHERS",
	"LAK": "KINGS",
	"MIN": "WILD",
	"MTL": "CANADIENS",
	"NJD": "DEVILS",
	"NSH": "PREDATORS",
	"NYI": "ISLANDERS",
	"NYR": "RANGERS",
	"OTT": "SENATORS",
	"PHI": "FLYERS",
	"PIT": "PENGUINS",
	"SEA": "KRAKEN",
	"SJS": "SHARKS",
	"STL": "BLUES",
	"TBL": "LIGHTNING",
	"TOR": "MAPLE LEAFS",
	"VAN": "CANUCKS",
	"VGK": "GOLDEN KNIGHTS",
	"WSH": "CAPITALS",
	"WPG": "JETS",
}

// Known reports whether abbrev names a club the scoreboard has colors and a nickname for.
func Known(abbrev string) bool {
	_, ok := brandColors[strings.ToUpper(strings.TrimSpace(abbrev))]
	return ok
}

// PrimaryColor returns the club's brand color, or white for unknown codes.
func PrimaryColor(abbrev string) color.RGBA {
	if c, ok := brandColors[strings.ToUpper(abbrev)]; ok {
		return c
	}
	return White
}

// ConfettiColors returns the primary and accent confetti colors for a club.
// Clubs without a dedicated pair use their brand color plus yellow.
func ConfettiColors(abbrev string) (color.RGBA, color.RGBA) {
	code := strings.ToUpper(abbrev)
	if pair, ok := confettiColors[code]; ok {
		return pair.primary, pair.accent
	}
	return PrimaryColor(code), Yellow
}

// Nickname returns the club nickname used on banners, falling back to the code itself.
func Nickname(abbrev string) string {
	code := strings.ToUpper(abbrev)
	if name, ok := nicknames[code]; ok {
		return name
	}
	return code
}
