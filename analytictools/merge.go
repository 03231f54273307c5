// analytictools/merge.go
package analytictools

// MergeParentAndBasename joins the name of path's parent directory and
// path's own name with "_", e.g. "/a/b/CO2.csv" becomes "b_CO2.csv".
func MergeParentAndBasename(path any) (string, error) {
	p, err := asPath(path)
	if err != nil {
		return "", err
	}

	parentName := p.Parent().Name()
	if parentName == "" {
		return "", argError(ErrInvalidArgumentValue, "missing filename or parent name in the path")
	}

	return parentName + "_" + p.Name(), nil
}
