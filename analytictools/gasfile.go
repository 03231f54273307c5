// analytictools/gasfile.go
package analytictools

// GasFormula names one of the greenhouse gases tracked in the dataset.
type GasFormula string

const (
	CO2 GasFormula = "CO2"
	CH4 GasFormula = "CH4"
	N2O GasFormula = "N2O"
	SF6 GasFormula = "SF6"
	H2  GasFormula = "H2"
)

// GasFormulas lists every known formula.
func GasFormulas() []GasFormula {
	return []GasFormula{CO2, CH4, N2O, SF6, H2}
}

// ParseGasFormula matches s exactly, case included.
func ParseGasFormula(s string) (GasFormula, bool) {
	for _, g := range GasFormulas() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// IsGasCSV reports whether path names an original gas file, "<formula>.csv".
// The suffix must be exactly ".csv".
func IsGasCSV(path any) (bool, error) {
	p, err := asPath(path)
	if err != nil {
		return false, err
	}
	if p.Suffix() != ".csv" {
		return false, argError(ErrInvalidFileExtension, "expected path to a .csv file, got something else instead")
	}
	_, ok := ParseGasFormula(p.Stem())
	return ok, nil
}
