package constants

// AircraftRegistrationLetters maps every supported aircraft model to the
// fixed middle letter of its tail number. Tail numbers follow the pattern
// SP-<random><model letter><random>.
var AircraftRegistrationLetters = map[string]string{
	"Boeing 737":   "N",
	"Boeing 787":   "D",
	"Airbus A320":  "A",
	"Airbus A350":  "B",
	"Embraer E195": "E",
	"ATR 72":       "T",
	"Cessna 208":   "C",
}

// ICAORegions is the set of accepted continent codes on an application.
var ICAORegions = map[string]struct{}{
	"EU": {},
	"NA": {},
	"SA": {},
	"AS": {},
	"AF": {},
	"OC": {},
}

const (
	// MinApplicantAge is the minimum age in years at submission time.
	MinApplicantAge = 16

	// MinSelectedAircraft / MaxSelectedAircraft bound the selected-aircraft list.
	MinSelectedAircraft = 1
	MaxSelectedAircraft = 3
)
