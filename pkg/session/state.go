package session

import "github.com/RobertLuptonTheGood/eups/pkg/errors"

// State is one active product's session bookkeeping: its SETUP_<P>
// marker plus the current value of its <PRODUCT>_DIR mirror variable, as
// read from the live environment at unsetup time.
type State struct {
	Marker     *Marker
	ProductDir string
}

// ReadState reads and parses product's SETUP_<P>/<PRODUCT>_DIR pair out
// of env. It returns (nil, nil) if the product has no SETUP_<P> entry at
// all, i.e. it is not currently set up.
func ReadState(env map[string]string, product string) (*State, error) {
	varName := Marker{Product: product}.VarName()
	raw, ok := env[varName]
	if !ok {
		return nil, nil
	}
	marker, err := ParseMarker(raw)
	if err != nil {
		return nil, err
	}
	dirVar := marker.DirVarName()
	return &State{Marker: marker, ProductDir: env[dirVar]}, nil
}

// CheckConsistency compares s's recorded product directory against
// currentDir, the directory an unsetup is about to tear down. A mismatch
// never aborts unsetup (spec.md §4.6); it returns a STATE_MISMATCH
// diagnostic for the caller to surface as a warning alongside the
// otherwise-successful unsetup.
func (s *State) CheckConsistency(currentDir string) *errors.EupsError {
	if s.ProductDir == currentDir {
		return nil
	}
	return errors.StateMismatch(s.Marker.Product, s.ProductDir, currentDir)
}
