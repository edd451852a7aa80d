// Package county resolves the historical birthplace encoded in the serial
// digits of Swedish personal identity numbers issued before 1990.
package county

// ExtraNumber is the label for the administrative reserve serial ranges
// that never mapped to a county.
const ExtraNumber = "Extra nummer"

type serialRange struct {
	low   int
	high  int
	label string
}

// Serial series assigned per county up to 1989, after which the serial
// lost its geographic meaning. Ranges are inclusive and cover 0-99.
var ranges = []serialRange{
	{0, 13, "Stockholms län"},
	{14, 15, "Uppsala län"},
	{16, 18, "Södermanlands län"},
	{19, 23, "Östergötlands län"},
	{24, 26, "Jönköpings län"},
	{27, 28, "Kronobergs län"},
	{29, 31, "Kalmar län"},
	{32, 32, "Gotlands län"},
	{33, 34, "Blekinge län"},
	{35, 38, "Kristianstads län"},
	{39, 45, "Malmöhus län"},
	{46, 47, "Hallands län"},
	{48, 54, "Göteborgs och Bohus län"},
	{55, 58, "Älvsborgs län"},
	{59, 61, "Skaraborgs län"},
	{62, 64, "Värmlands län"},
	{65, 65, ExtraNumber},
	{66, 68, "Örebro län"},
	{69, 70, "Västmanlands län"},
	{71, 73, "Kopparbergs län"},
	{74, 74, ExtraNumber},
	{75, 77, "Gävleborgs län"},
	{78, 81, "Västernorrlands län"},
	{82, 84, "Jämtlands län"},
	{85, 88, "Västerbottens län"},
	{89, 92, "Norrbottens län"},
	{93, 99, "Extra nummer för invandrare"},
}

// Lookup returns the birthplace label for a two-digit serial. The boolean
// is false when the serial falls outside every range.
func Lookup(serial int) (string, bool) {
	for _, r := range ranges {
		if serial >= r.low && serial <= r.high {
			return r.label, true
		}
	}
	return "", false
}
