package palette

import (
	"github.com/matt-g-everett/ledfx/pixel"
)

func table(stops ...uint32) Palette {
	var p Palette
	for i := 0; i < len(stops) && i < Stops; i++ {
		p[i] = pixel.Hex(stops[i])
	}
	return p
}

var aurora = table(
	0x00FF1E, 0x00FF1E, 0x00FF1E, 0x00FF1E,
	0x00FF1E, 0x00FF1E, 0x00FF1E, 0x00FF28,
	0x00FF3C, 0x00FF5A, 0x00FF82, 0x00FFB4,
	0x00FFDC, 0x32FFFF, 0x64FFFF, 0x96FFFF)

var forest = table(
	0x003200, 0x005014, 0x006400, 0x147814, 0x009600, 0x32B41E,
	0x50C832, 0x649600, 0x967800, 0x646400, 0x32B41E, 0x009600,
	0x007814, 0x006400, 0x005014, 0x003C0A)

var halloween = table(
	0xFF4000, 0xFF6000, 0xFF8000, 0x802000, 0x200010, 0x400040,
	0x600080, 0x8000C0, 0x600080, 0x400040, 0x200010, 0x802000,
	0xFF8000, 0xFF6000, 0x40FF00, 0xFF4000)

var rainbow = table(
	0xFF0000, 0xFF5000, 0xFF9600, 0xFFFF00, 0x96FF00, 0x00FF00,
	0x00FF96, 0x00FFFF, 0x0096FF, 0x0000FF, 0x5000FF, 0x9600FF,
	0xFF00FF, 0xFF0096, 0xFF0050, 0xFF0000)

var fire = table(
	0x320000, 0x640000, 0x960000, 0xC80000, 0xFF0000, 0xFF3200,
	0xFF6400, 0xFF9600, 0xFFC800, 0xFFFF00, 0xFFFF64, 0xFFC800,
	0xFF9600, 0xFF6400, 0xFF3200, 0xC80000)

var sunset = table(
	0x780082, 0xB40078, 0xDC143C, 0xFF3C28, 0xFF6414, 0xFF8C00,
	0xFFB400, 0xFFDC64, 0xFFB400, 0xFF8C00, 0xFF6414, 0xFF3C28,
	0xDC143C, 0xB40078, 0x8C008C, 0x780082)

var ice = table(
	0xC8F0FF, 0xB4DCFF, 0x96C8FF, 0x78B4FF, 0x64A0FF, 0x508CFF,
	0xC8F0FF, 0xDCFAFF, 0xFFFFFF, 0xDCFAFF, 0xC8F0FF, 0xB4DCFF,
	0x96C8FF, 0x78B4FF, 0xB4DCFF, 0xC8F0FF)

var party = table(
	0xFF00FF, 0xFF0000, 0xFF8000, 0xFFFF00, 0x00FF00, 0x00FFFF,
	0x0080FF, 0x8000FF, 0xFF0080, 0xFF0000, 0xFFC800, 0x00FF80,
	0x00C8FF, 0xC800FF, 0xFF00C8, 0xFF6400)

var lava = table(
	0x000000, 0x320000, 0x640000, 0x960000, 0xC80000, 0xFF1400,
	0xFF3C00, 0xFF6400, 0xFF8C00, 0xFFB400, 0xFFDC00, 0xFFFF64,
	0xFFDC00, 0xFF8C00, 0xFF3C00, 0x960000)

var pastel = table(
	0xFFB4B4, 0xFFC896, 0xFFFFB4, 0xC8FFB4, 0xB4FFC8, 0xB4E6FF,
	0xC8B4FF, 0xFFB4F0, 0xFFC8C8, 0xFFE6B4, 0xE6FFB4, 0xB4FFE6,
	0xB4C8FF, 0xE6B4FF, 0xFFB4DC, 0xFFBEBE)

// Deep water with white crests.
var ocean = table(
	0x000212, 0x000F1E, 0x001937, 0x002850, 0x004678, 0x0064B4,
	0x148CF0, 0x28C8FF, 0x50DCFF, 0x96E6FF, 0xC8F0FF, 0xC8F0FF,
	0x96E6FF, 0x28C8FF, 0x004678, 0x000212)

var heatColors = table(
	0x000000, 0x330000, 0x660000, 0x990000, 0xCC0000, 0xFF0000,
	0xFF3300, 0xFF6600, 0xFF9900, 0xFFCC00, 0xFFFF00, 0xFFFF33,
	0xFFFF66, 0xFFFF99, 0xFFFFCC, 0xFFFFFF)

var sakura = table(
	0xFFC0CB, 0xFFB7C5, 0xFFADBE, 0xFFA4B8, 0xFF9AB1, 0xFF91AB,
	0xFFD1DC, 0xFFE4EC, 0xFFF5F8, 0xFFFFFF, 0xFFF5F8, 0xFFE4EC,
	0xFFD1DC, 0xFFC0CB, 0xFFADBE, 0xFFC0CB)

var rivendell = table(
	0x003320, 0x004D30, 0x006644, 0x008060, 0x009980, 0x00B399,
	0x00CCB3, 0x33FFCC, 0x66FFDD, 0x99FFEE, 0x66FFDD, 0x33FFCC,
	0x00CCB3, 0x00B399, 0x008060, 0x006644)

var cyberpunk = table(
	0xFF00FF, 0xFF33CC, 0xFF66AA, 0xFF0099, 0x00FFFF, 0x33FFFF,
	0x66FFFF, 0x00CCFF, 0x0099FF, 0x0066FF, 0xFF00FF, 0x00FFFF,
	0xFF33CC, 0x00CCFF, 0xFF00FF, 0x00FFFF)

var orangeTeal = table(
	0x008B8B, 0x00A0A0, 0x00B5B5, 0x00CCCC, 0x20B2AA, 0xFF8C00,
	0xFFA500, 0xFFB347, 0xFFC87C, 0xFFD700, 0xFF8C00, 0x00CCCC,
	0x20B2AA, 0xFFA500, 0x008B8B, 0xFF8C00)

var christmas = table(
	0xFF0000, 0xCC0000, 0x990000, 0x009900, 0x00CC00, 0x00FF00,
	0xFFFFFF, 0xFFFFCC, 0xFFFFFF, 0x00FF00, 0x00CC00, 0x009900,
	0xFF0000, 0xCC0000, 0xFFFFFF, 0xFF0000)

var redBlue = table(
	0xFF0000, 0xAA0055, 0x5500AA, 0x0000FF,
	0x0000FF, 0x5500AA, 0xAA0055, 0xFF0000,
	0xFF0000, 0xAA0055, 0x5500AA, 0x0000FF,
	0x0000FF, 0x5500AA, 0xAA0055, 0xFF0000)

var matrix = table(
	0x000000, 0x001100, 0x002200, 0x003300, 0x004400, 0x006600,
	0x008800, 0x00AA00, 0x00CC00, 0x00FF00, 0x33FF33, 0x00FF00,
	0x00CC00, 0x00AA00, 0x006600, 0x003300)

var sunnyGold = table(
	0xFFE4B5, 0xFFD39B, 0xFFC87C, 0xFFB347, 0xFFA500, 0xFF8C00,
	0xFFD700, 0xFFE135, 0xFFF68F, 0xFFFACD, 0xFFFFE0, 0xFFFACD,
	0xFFF68F, 0xFFE135, 0xFFD700, 0xFFE4B5)

var fairy = table(
	0xFFE8C0, 0xFFD890, 0xFFC860, 0xFFB040, 0xFFF0D0, 0xFFFFFF,
	0xFFF0D0, 0xFFB040, 0xFFC860, 0xFFD890, 0xFFE8C0, 0xFFFFF0,
	0xFFE8C0, 0xFFD890, 0xFFC860, 0xFFE8C0)

var twilight = table(
	0x0A0028, 0x140040, 0x280060, 0x400080, 0x6000A0, 0x8020B0,
	0xA040C0, 0xC060A0, 0xE08080, 0xFF9060, 0xE08080, 0xC060A0,
	0xA040C0, 0x6000A0, 0x280060, 0x140040)

// Classic 16 entry gradients used by the noise and plasma families.
var (
	RainbowColors = table(
		0xFF0000, 0xD52A00, 0xAB5500, 0xAB7F00,
		0xABAB00, 0x56D500, 0x00FF00, 0x00D52A,
		0x00AB55, 0x0056AA, 0x0000FF, 0x2A00D5,
		0x5500AB, 0x7F0081, 0xAB0055, 0xD5002B)
	OceanColors = table(
		0x000080, 0x0019A4, 0x0033C8, 0x004CEC,
		0x1966FF, 0x4C80FF, 0x8099FF, 0xB3B3FF,
		0xE6CCFF, 0xE6B3FF, 0xE699FF, 0xE680FF,
		0xE666FF, 0xE64CFF, 0xE633FF, 0xE619FF)
	PartyColors = table(
		0x5500AB, 0x84007C, 0xB5004B, 0xE5001B,
		0xE81700, 0xB84700, 0xAB7700, 0xABAB00,
		0xAB5500, 0xDD2200, 0xF2000E, 0xC2003E,
		0x8F0071, 0x5F00A1, 0x2F00D0, 0x0007F9)
)

var fixed = map[uint8]*Palette{
	Aurora:     &aurora,
	Forest:     &forest,
	Halloween:  &halloween,
	Rainbow:    &rainbow,
	Fire:       &fire,
	Sunset:     &sunset,
	Ice:        &ice,
	Party:      &party,
	Lava:       &lava,
	Pastel:     &pastel,
	Ocean:      &ocean,
	HeatColors: &heatColors,
	Sakura:     &sakura,
	Rivendell:  &rivendell,
	Cyberpunk:  &cyberpunk,
	OrangeTeal: &orangeTeal,
	Christmas:  &christmas,
	RedBlue:    &redBlue,
	Matrix:     &matrix,
	SunnyGold:  &sunnyGold,
	Fairy:      &fairy,
	Twilight:   &twilight,
}
