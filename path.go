package joatpath

// Path is a file-system path value. It carries no state beyond the
// string itself; methods are pure.
type Path string

// Clean returns the path in canonical form, using the host platform's
// path rules.
func (p Path) Clean() Path {
	return Path(Clean(string(p)))
}

func (p Path) String() string {
	return string(p)
}
