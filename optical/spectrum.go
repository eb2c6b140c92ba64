package optical

// ITU-T optical spectral band boundaries, expressed as frequencies.
// Wavelength ranges: O 1260-1360nm, E 1360-1460nm, S 1460-1530nm,
// C 1530-1565nm, L 1565-1625nm, U 1625-1675nm.
var (
	// CenterFrequency is the reference center of the ITU-T frequency grid.
	CenterFrequency = THz(193.100)

	OBandMin = THz(220.436)
	OBandMax = THz(237.931)

	EBandMin = THz(205.337)
	EBandMax = THz(220.436)

	SBandMin = THz(195.943)
	SBandMax = THz(205.337)

	CBandMin = THz(191.561)
	CBandMax = THz(195.943)

	LBandMin = THz(184.488)
	LBandMax = THz(191.561)

	UBandMin = THz(178.981)
	UBandMax = THz(184.488)
)
